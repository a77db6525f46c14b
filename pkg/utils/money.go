package utils

import "github.com/shopspring/decimal"

// CentsToDecimal converte valores monetários em centavos para reais com duas casas.
// Origem ausente ou zerada vira NullDecimal inválido: a API não distingue
// "sem valor" de "não informado", então preservamos NULL em vez de 0.00.
func CentsToDecimal(cents *int64) decimal.NullDecimal {
	if cents == nil || *cents == 0 {
		return decimal.NullDecimal{}
	}

	value := decimal.NewFromInt(*cents).Div(decimal.NewFromInt(100)).Round(2)

	return decimal.NullDecimal{Decimal: value, Valid: true}
}
