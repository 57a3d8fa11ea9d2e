package core

import "fmt"

type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Axes lists the three axes in frame order.
var Axes = [3]Axis{AxisX, AxisY, AxisZ}

// AxisFromID decodes a pick id into an axis. Only 0, 1 and 2 are valid.
func AxisFromID(id int) (Axis, bool) {
	if id < int(AxisX) || id > int(AxisZ) {
		return 0, false
	}
	return Axis(id), true
}

func (a Axis) Valid() bool {
	return a >= AxisX && a <= AxisZ
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}
