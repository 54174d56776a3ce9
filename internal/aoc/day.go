package aoc

import "fmt"

const (
	FirstDay = 1
	LastDay  = 25
)

type InvalidDayError struct {
	Day int
}

func (e InvalidDayError) Error() string {
	return fmt.Sprintf("invalid day: %d", e.Day)
}

type InvalidPartError struct {
	Part int
}

func (e InvalidPartError) Error() string {
	return fmt.Sprintf("invalid part: %d", e.Part)
}

// Day is a calendar day between FirstDay and LastDay.
type Day int

func ParseDay(n int) (Day, error) {
	if n < FirstDay || n > LastDay {
		return 0, InvalidDayError{Day: n}
	}
	return Day(n), nil
}

// InputFile is the conventional input file name, e.g. day06.txt.
func (d Day) InputFile() string {
	return fmt.Sprintf("day%02d.txt", int(d))
}

func (d Day) String() string {
	return fmt.Sprintf("Day %02d", int(d))
}

type Part int

const (
	PartOne Part = 1
	PartTwo Part = 2
)

func ParsePart(n int) (Part, error) {
	switch Part(n) {
	case PartOne, PartTwo:
		return Part(n), nil
	default:
		return 0, InvalidPartError{Part: n}
	}
}

func (p Part) String() string {
	return fmt.Sprintf("Part %d", int(p))
}
