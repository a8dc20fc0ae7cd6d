package system

import (
	"strings"

	"github.com/younwookim/raywalk/internal/domain/entity"
)

// Direction is a set of cardinal movement directions
type Direction uint8

const (
	DirForward Direction = 1 << iota // -Z
	DirBack                          // +Z
	DirLeft                          // -X
	DirRight                         // +X

	DirNone Direction = 0
)

// cardinal lists the directions in the order they are resolved each frame
var cardinal = [...]struct {
	dir    Direction
	action Action
	vec    entity.Vec3
	name   string
}{
	{DirForward, ActionForward, entity.Vec3{Z: -1}, "forward"},
	{DirBack, ActionBack, entity.Vec3{Z: 1}, "back"},
	{DirLeft, ActionLeft, entity.Vec3{X: -1}, "left"},
	{DirRight, ActionRight, entity.Vec3{X: 1}, "right"},
}

// Has reports whether every direction in o is also in d
func (d Direction) Has(o Direction) bool {
	return d&o == o
}

// String lists the directions in resolution order, e.g. "forward|right"
func (d Direction) String() string {
	if d == DirNone {
		return "none"
	}
	var names []string
	for _, c := range cardinal {
		if d.Has(c.dir) {
			names = append(names, c.name)
		}
	}
	return strings.Join(names, "|")
}
