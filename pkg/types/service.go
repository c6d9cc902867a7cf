package types

// ServiceDays enumerates the day-of-week values accepted for a worship
// service, in render order.
var ServiceDays = []string{"Dimanche", "Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi", "Samedi"}

// Service is a recurring worship service or meeting slot.
type Service struct {
	Meta
	Day         string `db:"day" form:"day" validate:"required,service_day"`
	Time        string `db:"time" form:"time" validate:"required"`
	Title       string `db:"title" form:"title" validate:"required"`
	Description string `db:"description" form:"description"`
	OrderIndex  int    `db:"order_index" form:"orderIndex"`
}

func ValidServiceDay(day string) bool {
	for _, d := range ServiceDays {
		if d == day {
			return true
		}
	}
	return false
}
