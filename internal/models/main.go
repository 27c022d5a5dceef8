package models

// ModelRegistry lists every model handed to gorm AutoMigrate. Order matters:
// referenced tables first.
var ModelRegistry = []any{
	&Sector{},
	&Family{},
	&Member{},
	&SectorHistory{},
	&Event{},
	&AttendanceRecord{},
	&LetterTemplate{},
	&Letter{},
}
