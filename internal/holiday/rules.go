package holiday

import "time"

// Observance names produced by the default rule table
const (
	NewYearsDay           = "New Year's Day"
	MartinLutherKingJrDay = "Martin Luther King Jr. Day"
	PresidentsDay         = "Presidents' Day"
	MemorialDay           = "Memorial Day"
	IndependenceDay       = "Independence Day"
	LaborDay              = "Labor Day"
	ColumbusDay           = "Columbus Day"
	VeteransDay           = "Veterans Day"
	Thanksgiving          = "Thanksgiving"
	Christmas             = "Christmas"
	CesarChavezDay        = "Cesar Chavez Day"

	GoodFriday   = "Good Friday"
	EasterSunday = "Easter"
	Pentecost    = "Pentecost"
	MothersDay   = "Mother's Day"
	FathersDay   = "Father's Day"

	GeneralConference = "General Conference"
	PioneerDay        = "Pioneer Day"

	FirstVision              = "First Vision"
	ChurchOrganization       = "Church Organization"
	KirtlandTempleDedication = "Kirtland Temple Dedication"
	FirstPresidencyOrganized = "First Presidency Organized"
	JosephSmithMartyrdom     = "Joseph Smith Martyrdom"
)

// DefaultRules returns the built-in rule table. The order is the order in
// which names appear for a date that several rules land on.
func DefaultRules() []Rule {
	return []Rule{
		// US federal and California observances
		Fixed(CategoryCivil, NewYearsDay, time.January, 1),
		NthWeekday(CategoryCivil, MartinLutherKingJrDay, 3, time.Monday, time.January),
		NthWeekday(CategoryCivil, PresidentsDay, 3, time.Monday, time.February),
		LastWeekday(CategoryCivil, MemorialDay, time.Monday, time.May),
		Fixed(CategoryCivil, IndependenceDay, time.July, 4),
		NthWeekday(CategoryCivil, LaborDay, 1, time.Monday, time.September),
		NthWeekday(CategoryCivil, ColumbusDay, 2, time.Monday, time.October),
		Fixed(CategoryCivil, VeteransDay, time.November, 11),
		NthWeekday(CategoryCivil, Thanksgiving, 4, time.Thursday, time.November),
		Fixed(CategoryCivil, Christmas, time.December, 25),
		Fixed(CategoryCivil, CesarChavezDay, time.March, 31),

		EasterOffset(CategoryChristian, GoodFriday, -2),
		EasterOffset(CategoryChristian, EasterSunday, 0),
		EasterOffset(CategoryChristian, Pentecost, 49),
		NthWeekday(CategoryChristian, MothersDay, 2, time.Sunday, time.May),
		NthWeekday(CategoryChristian, FathersDay, 3, time.Sunday, time.June),

		// conference runs Saturday and Sunday
		FirstSundayAnchor(CategoryChurch, GeneralConference, time.April, 1),
		FirstSundayAnchor(CategoryChurch, GeneralConference, time.October, 1),
		Fixed(CategoryChurch, PioneerDay, time.July, 24),

		Fixed(CategoryHistory, FirstVision, time.September, 21),
		Fixed(CategoryHistory, ChurchOrganization, time.April, 6),
		Fixed(CategoryHistory, KirtlandTempleDedication, time.March, 27),
		Fixed(CategoryHistory, FirstPresidencyOrganized, time.April, 3),
		Fixed(CategoryHistory, JosephSmithMartyrdom, time.June, 27),
	}
}
