package utils

import "fmt"

// BuildAddress joins the six address parts into the single display string
// transmitted in the submission payload. The string is never parsed back;
// the only contract is that all six parts appear in a stable order.
func BuildAddress(state, city, neighborhood, road, houseNumber, cep string) string {
	return fmt.Sprintf("%s, %s, %s, %s - %s, CEP %s", road, houseNumber, neighborhood, city, state, cep)
}
