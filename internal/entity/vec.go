package entity

import "math"

type Vec struct{ X, Y float64 }

func (v Vec) Add(o Vec) Vec       { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }

func Dist(a, b Vec) float64 { return math.Hypot(a.X-b.X, a.Y-b.Y) }
