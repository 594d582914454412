package domain

// ToCelsius converts degrees Fahrenheit to degrees Celsius.
func ToCelsius(f float64) float64 {
	return (f - 32.0) * 5.0 / 9.0
}

// ToFahrenheit converts degrees Celsius to degrees Fahrenheit.
func ToFahrenheit(c float64) float64 {
	return c*9.0/5.0 + 32.0
}
