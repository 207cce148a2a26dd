package sessionlog

// Practice types.
const (
	PracticeDrivingRange = "Driving Range"
	PracticeNineHoles    = "9 Holes"
	PracticeEighteen     = "18 Holes"
	PracticeCustom       = "Custom"
)

// Directions.
const (
	DirectionStraight = "Straight"
	DirectionLeft     = "Left"
	DirectionRight    = "Right"
)

// PracticeTypes lists the selectable practice categories.
var PracticeTypes = []string{PracticeDrivingRange, PracticeNineHoles, PracticeEighteen, PracticeCustom}

// Clubs lists the selectable clubs.
var Clubs = []string{"Driver", "3 Wood", "5 Iron", "7 Iron", "9 Iron", "Pitching Wedge", "Putter"}

// Directions lists the selectable shot directions.
var Directions = []string{DirectionStraight, DirectionLeft, DirectionRight}

// Feels lists the selectable swing-feel ratings.
var Feels = []string{"Bad", "Okay", "Good"}

// TeeColors lists the selectable tee colors for hole-based rounds.
var TeeColors = []string{"Red", "White", "Blue", "Gold", "Other"}

// HoleBased reports whether the practice type carries course context
// (hole number, par, tee color).
func HoleBased(practiceType string) bool {
	return practiceType == PracticeNineHoles || practiceType == PracticeEighteen
}

func validPracticeType(s string) bool { return contains(PracticeTypes, s) }
func validClub(s string) bool         { return contains(Clubs, s) }
func validDirection(s string) bool    { return contains(Directions, s) }
func validFeel(s string) bool         { return contains(Feels, s) }
func validTeeColor(s string) bool     { return contains(TeeColors, s) }

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
