//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"syscall/js"

	"github.com/smallyu/go-ec-algebra/pkg/curve"
	"github.com/smallyu/go-ec-algebra/pkg/field"
)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go EC-Algebra WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoECAlgebra", map[string]interface{}{
		"FieldOp":   js.FuncOf(FieldOp),
		"PointAdd":  js.FuncOf(PointAdd),
		"ScalarMul": js.FuncOf(ScalarMul),
	})

	<-c
}

// ElementDTO carries a field element as decimal strings. big.Int would
// marshal as a JSON number and lose precision in JS, so everything
// crosses the boundary as strings.
type ElementDTO struct {
	Num   string `json:"num"`
	Prime string `json:"prime"`
}

// PointDTO carries an affine point on y^2 = x^3 + a*x + b over F_prime.
// Infinity is represented by empty coordinates.
type PointDTO struct {
	X        string `json:"x"`
	Y        string `json:"y"`
	A        string `json:"a"`
	B        string `json:"b"`
	Prime    string `json:"prime"`
	Infinity bool   `json:"infinity"`
}

func parseInt(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid decimal integer %q", s)
	}
	return n, nil
}

func parseElement(d ElementDTO) (*field.Element, error) {
	num, err := parseInt(d.Num)
	if err != nil {
		return nil, err
	}
	prime, err := parseInt(d.Prime)
	if err != nil {
		return nil, err
	}
	return field.New(num, prime), nil
}

func parsePoint(d PointDTO) (*curve.FieldPoint, error) {
	prime, err := parseInt(d.Prime)
	if err != nil {
		return nil, err
	}
	a, err := parseInt(d.A)
	if err != nil {
		return nil, err
	}
	b, err := parseInt(d.B)
	if err != nil {
		return nil, err
	}
	c, err := curve.NewFieldCurve(field.New(a, prime), field.New(b, prime))
	if err != nil {
		return nil, err
	}
	if d.Infinity {
		return c.NewInfinity(), nil
	}
	x, err := parseInt(d.X)
	if err != nil {
		return nil, err
	}
	y, err := parseInt(d.Y)
	if err != nil {
		return nil, err
	}
	return c.NewPoint(field.New(x, prime), field.New(y, prime))
}

func encodePoint(p *curve.FieldPoint, a, b *field.Element) string {
	dto := PointDTO{
		A:        a.Num().String(),
		B:        b.Num().String(),
		Prime:    a.Prime().String(),
		Infinity: p.IsInfinity(),
	}
	if !p.IsInfinity() {
		dto.X = p.X().Num().String()
		dto.Y = p.Y().Num().String()
	}
	out, _ := json.Marshal(dto)
	return string(out)
}

// FieldOp applies a field operation.
// Arguments:
// 0: operation name ("add", "sub", "mul", "div")
// 1: JSON ElementDTO (left operand)
// 2: JSON ElementDTO (right operand)
// Returns:
// JSON ElementDTO of the result, or "error: ..." string
func FieldOp(this js.Value, args []js.Value) interface{} {
	if len(args) != 3 {
		return "error: expected 3 arguments (op, lhs, rhs)"
	}

	var lhsDTO, rhsDTO ElementDTO
	if err := json.Unmarshal([]byte(args[1].String()), &lhsDTO); err != nil {
		return fmt.Sprintf("error: invalid lhs json: %v", err)
	}
	if err := json.Unmarshal([]byte(args[2].String()), &rhsDTO); err != nil {
		return fmt.Sprintf("error: invalid rhs json: %v", err)
	}

	lhs, err := parseElement(lhsDTO)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	rhs, err := parseElement(rhsDTO)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	var result *field.Element
	switch op := args[0].String(); op {
	case "add":
		result, err = lhs.Add(rhs)
	case "sub":
		result, err = lhs.Sub(rhs)
	case "mul":
		result, err = lhs.Mul(rhs)
	case "div":
		result, err = lhs.Div(rhs)
	default:
		return fmt.Sprintf("error: unknown operation %q", op)
	}
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	out, _ := json.Marshal(ElementDTO{
		Num:   result.Num().String(),
		Prime: result.Prime().String(),
	})
	return string(out)
}

// PointAdd adds two points on the same prime-field curve.
// Arguments:
// 0: JSON PointDTO (left operand)
// 1: JSON PointDTO (right operand)
// Returns:
// JSON PointDTO of the sum, or "error: ..." string
func PointAdd(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (p1, p2)"
	}

	var d1, d2 PointDTO
	if err := json.Unmarshal([]byte(args[0].String()), &d1); err != nil {
		return fmt.Sprintf("error: invalid p1 json: %v", err)
	}
	if err := json.Unmarshal([]byte(args[1].String()), &d2); err != nil {
		return fmt.Sprintf("error: invalid p2 json: %v", err)
	}

	p1, err := parsePoint(d1)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	p2, err := parsePoint(d2)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	sum, err := p1.Add(p2)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return encodePoint(sum, p1.Curve().A(), p1.Curve().B())
}

// ScalarMul multiplies a point by a decimal-string scalar.
// Arguments:
// 0: JSON PointDTO
// 1: scalar as a decimal string
// Returns:
// JSON PointDTO of the product, or "error: ..." string
func ScalarMul(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (point, scalar)"
	}

	var dto PointDTO
	if err := json.Unmarshal([]byte(args[0].String()), &dto); err != nil {
		return fmt.Sprintf("error: invalid point json: %v", err)
	}
	p, err := parsePoint(dto)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	k, err := parseInt(args[1].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	result, err := p.ScalarMul(k)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return encodePoint(result, p.Curve().A(), p.Curve().B())
}
