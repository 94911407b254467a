package encode

import (
	"strings"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	NameColor ColorAttr = iota // type, constructor and variant names
	FieldColor
	ValueColor  // numeric and boolean literals
	StringColor // string and char literals
	SepColor    // punctuation
	ChainColor  // vec! and iterator/conversion chains
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			NameColor:   color.RGB(128, 168, 196).SprintfFunc(),
			FieldColor:  color.RGB(196, 96, 16).SprintfFunc(),
			ValueColor:  color.RGB(128, 216, 236).SprintfFunc(),
			StringColor: color.RGB(8, 196, 16).SprintfFunc(),
			SepColor:    color.RGB(255, 0, 196).SprintfFunc(),
			ChainColor:  color.RGB(96, 96, 96).SprintfFunc(),
		},
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(a ColorAttr, s string) string {
	return c.Get(a)(s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}
