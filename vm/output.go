package vm

//go:generate mockgen -source=output.go -destination=output_mock.go -package=vm

// Output observes every value printed by the machine.
type Output interface {
	// Emit is called once per print instruction, synchronously.
	Emit(value int16) error
}

// OutputFunc adapts a function to the Output interface.
type OutputFunc func(value int16) error

// Emit calls fn(value).
func (fn OutputFunc) Emit(value int16) error {
	return fn(value)
}
