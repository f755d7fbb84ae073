package services

import (
	"math"
	"strconv"
	"strings"
)

// Lower bounds of the letter bands, best first. Anything below the last
// bound is F.
var gradeBands = []struct {
	Letter string
	Min    float64
}{
	{"A", 3.5},
	{"B", 2.5},
	{"C", 1.5},
	{"D", 1.0},
}

const failLetter = "F"

// GradeLetter returns the single band g falls in.
func GradeLetter(g float64) string {
	for _, b := range gradeBands {
		if g >= b.Min {
			return b.Letter
		}
	}
	return failLetter
}

// gradeBucketSQL renders the same bands as a CASE expression over col.
func gradeBucketSQL(col string) string {
	var sb strings.Builder
	sb.WriteString("CASE")
	for _, b := range gradeBands {
		sb.WriteString(" WHEN ")
		sb.WriteString(col)
		sb.WriteString(" >= ")
		sb.WriteString(strconv.FormatFloat(b.Min, 'f', -1, 64))
		sb.WriteString(" THEN '")
		sb.WriteString(b.Letter)
		sb.WriteString("'")
	}
	sb.WriteString(" ELSE '" + failLetter + "' END")
	return sb.String()
}

type GradeDistribution struct {
	A int64 `json:"A"`
	B int64 `json:"B"`
	C int64 `json:"C"`
	D int64 `json:"D"`
	F int64 `json:"F"`
}

func (d *GradeDistribution) add(letter string, n int64) {
	switch letter {
	case "A":
		d.A += n
	case "B":
		d.B += n
	case "C":
		d.C += n
	case "D":
		d.D += n
	default:
		d.F += n
	}
}

// roundGrade rounds to 2 decimal places.
func roundGrade(v float64) float64 {
	return math.Round(v*100) / 100
}
