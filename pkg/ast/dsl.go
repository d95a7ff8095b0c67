package ast

// Terse constructors for building trees in tests and fixtures.

func Int(value int64) *IntLiteral {
	return NewIntLiteral(value)
}

func Str(value string) *StringLiteral {
	return NewStringLiteral(value)
}

func Ref(name string) *VariableReference {
	return NewVariableReference(name)
}

func Var(name string) *VarDeclaration {
	return NewVarDeclaration(name)
}

func Assign(name string, expression Expression) *Assignment {
	return NewAssignment(name, expression)
}

func Call(name string, args ...Expression) *CallExpression {
	return NewCallExpression(name, args)
}

func Add(op1, op2 Expression) *BinaryExpression {
	return NewBinaryExpression(OpAdd, op1, op2)
}

func Sub(op1, op2 Expression) *BinaryExpression {
	return NewBinaryExpression(OpSubtract, op1, op2)
}

func Fn(name string, statements ...Statement) *FunctionDefinition {
	return NewFunctionDefinition(name, nil, statements)
}

func Main(statements ...Statement) *FunctionDefinition {
	return Fn("main", statements...)
}

func Prog(functions ...*FunctionDefinition) *Program {
	return NewProgram(functions)
}
