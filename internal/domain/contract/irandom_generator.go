package contract

type IRandomGenerator interface {
	GenerateNumericCode(digits int) (string, error)
}
