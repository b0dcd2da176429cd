package parser

import (
	"github.com/photon-lang/photon/internal/ast"
	"github.com/photon-lang/photon/internal/token"
)

// Precedence levels, higher binds tighter. Matches the fixed operator
// table: Assignment(10) .. Primary(160).
type precedence int

const (
	precNone       precedence = 0
	precAssignment precedence = 10
	precRange      precedence = 20
	precLogicalOr  precedence = 30
	precLogicalAnd precedence = 40
	precEquality   precedence = 50
	precComparison precedence = 60
	precBitwiseOr  precedence = 70
	precBitwiseXor precedence = 80
	precBitwiseAnd precedence = 90
	precShift      precedence = 100
	precAddition   precedence = 110
	precMultiply   precedence = 120
	precPower      precedence = 130
	precUnary      precedence = 140
	precPostfix    precedence = 150
	precPrimary    precedence = 160
)

type binaryInfo struct {
	op         ast.BinaryOp
	prec       precedence
	rightAssoc bool
}

var binaryTable = map[token.Kind]binaryInfo{
	token.Assign:        {ast.Assign, precAssignment, true},
	token.PlusAssign:     {ast.AddAssign, precAssignment, true},
	token.MinusAssign:    {ast.SubAssign, precAssignment, true},
	token.StarAssign:     {ast.MulAssign, precAssignment, true},
	token.SlashAssign:    {ast.DivAssign, precAssignment, true},
	token.PercentAssign:  {ast.ModAssign, precAssignment, true},
	token.AmpAssign:      {ast.AndAssign, precAssignment, true},
	token.PipeAssign:     {ast.OrAssign, precAssignment, true},
	token.CaretAssign:    {ast.XorAssign, precAssignment, true},
	token.ShlAssign:      {ast.ShlAssign, precAssignment, true},
	token.ShrAssign:      {ast.ShrAssign, precAssignment, true},

	token.DotDot:   {ast.Range, precRange, false},
	token.DotDotEq: {ast.RangeInclusive, precRange, false},

	token.OrOr:  {ast.LogicalOr, precLogicalOr, false},
	token.AndAnd: {ast.LogicalAnd, precLogicalAnd, false},

	token.EqEq:      {ast.Eq, precEquality, false},
	token.BangEq:    {ast.NotEq, precEquality, false},
	token.Spaceship: {ast.Spaceship, precEquality, false},

	token.Lt:   {ast.Less, precComparison, false},
	token.LtEq: {ast.LessEq, precComparison, false},
	token.Gt:   {ast.Greater, precComparison, false},
	token.GtEq: {ast.GreaterEq, precComparison, false},

	token.Pipe:  {ast.BitOr, precBitwiseOr, false},
	token.Caret: {ast.BitXor, precBitwiseXor, false},
	token.Amp:   {ast.BitAnd, precBitwiseAnd, false},

	token.Shl: {ast.Shl, precShift, false},
	token.Shr: {ast.Shr, precShift, false},

	token.Plus:  {ast.Add, precAddition, false},
	token.Minus: {ast.Sub, precAddition, false},

	token.Star:    {ast.Mul, precMultiply, false},
	token.Slash:   {ast.Div, precMultiply, false},
	token.Percent: {ast.Mod, precMultiply, false},

	token.Pow: {ast.Pow, precPower, true},
}

// prefixUnaryTable maps a leading token kind to the unary operator it
// introduces, when it can start a prefix-unary expression.
var prefixUnaryTable = map[token.Kind]ast.UnaryOp{
	token.Plus:  ast.UnaryPlus,
	token.Minus: ast.UnaryMinus,
	token.Bang:  ast.UnaryNot,
	token.Tilde: ast.UnaryBitwiseNot,
	token.Amp:   ast.UnaryAddressOf,
	token.Star:  ast.UnaryDereference,
}
