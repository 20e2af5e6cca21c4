package domain

type ID string

func ValidateID(id string) bool {
	return len(id) == 24
}

// Amount is a price in cents.
type Amount int

func NewAmountFromCents(cents int) Amount {
	return Amount(cents)
}

func (a Amount) Add(b Amount) Amount {
	return a + b
}

func (a Amount) Multiply(b int) Amount {
	return a * Amount(b)
}

type Event interface {
	GetName() string
	GetEntityName() string
}
