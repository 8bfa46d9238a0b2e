package models

// Sex is the supporter's sex as captured by the supporter form.
type Sex string

const (
	SexMale   Sex = "Male"
	SexFemale Sex = "Female"
)

// Supporter is an emergency or treatment contact of one account.
type Supporter struct {
	ID        int64
	AccountID int64
	Name      string
	Sex       Sex
	// Phone1 is the main contact number; Phone2 is optional.
	Phone1 string
	Phone2 string
}
