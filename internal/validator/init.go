package validator

import (
	"ctchen222/Tic-Tac-Toe-Solo/internal/game"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	// Initialize validation
	validate = validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation("board_index", isBoardIndex); err != nil {
		panic(err)
	}
}

// isBoardIndex accepts integers that address a row or column of the board.
func isBoardIndex(fl validator.FieldLevel) bool {
	field := fl.Field()
	if !field.CanInt() {
		return false
	}
	v := field.Int()
	return v >= game.BorderMin && v <= game.BorderMax
}

func GetValidator() *validator.Validate {
	return validate
}
