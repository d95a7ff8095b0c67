package ast

type NodeType string

const (
	NodeProgram            NodeType = "Program"
	NodeFunctionDefinition NodeType = "FunctionDefinition"
	NodeVarDeclaration     NodeType = "VarDeclaration"
	NodeAssignment         NodeType = "Assignment"
	NodeIntLiteral         NodeType = "IntLiteral"
	NodeStringLiteral      NodeType = "StringLiteral"
	NodeVariableReference  NodeType = "VariableReference"
	NodeCallExpression     NodeType = "CallExpression"
	NodeBinaryExpression   NodeType = "BinaryExpression"
)

type Node interface {
	NodeType() NodeType
	isNode()
}

type nodeImpl struct {
	Type NodeType `json:"type"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) isNode()              {}

// Marker interfaces. Every expression may appear in statement position
// (a bare expression statement), so Expression subsumes Statement.

type Expression interface {
	Node
	expressionNode()
	statementNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}
func (expressionMarker) statementNode()  {}

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

// Program is the root node: an ordered list of function definitions.
type Program struct {
	nodeImpl

	Functions []*FunctionDefinition `json:"functions"`
}

func NewProgram(functions []*FunctionDefinition) *Program {
	return &Program{nodeImpl: newNodeImpl(NodeProgram), Functions: functions}
}

// FunctionDefinition carries a name, parameter names, and a statement body.
// The grammar only ever produces empty parameter lists; the entry-point
// check still inspects them so a hand-built AST with parameters is rejected.
type FunctionDefinition struct {
	nodeImpl

	Name       string      `json:"name"`
	Params     []string    `json:"params,omitempty"`
	Statements []Statement `json:"statements"`
}

func NewFunctionDefinition(name string, params []string, statements []Statement) *FunctionDefinition {
	return &FunctionDefinition{nodeImpl: newNodeImpl(NodeFunctionDefinition), Name: name, Params: params, Statements: statements}
}

// VarDeclaration introduces a name into the run's variable table.
type VarDeclaration struct {
	nodeImpl
	statementMarker

	Name string `json:"name"`
}

func NewVarDeclaration(name string) *VarDeclaration {
	return &VarDeclaration{nodeImpl: newNodeImpl(NodeVarDeclaration), Name: name}
}

// Assignment stores the value of Expression into the variable Var.
type Assignment struct {
	nodeImpl
	statementMarker

	Var        string     `json:"var"`
	Expression Expression `json:"expression"`
}

func NewAssignment(variable string, expression Expression) *Assignment {
	return &Assignment{nodeImpl: newNodeImpl(NodeAssignment), Var: variable, Expression: expression}
}

type IntLiteral struct {
	nodeImpl
	expressionMarker

	Value int64 `json:"val"`
}

func NewIntLiteral(value int64) *IntLiteral {
	return &IntLiteral{nodeImpl: newNodeImpl(NodeIntLiteral), Value: value}
}

type StringLiteral struct {
	nodeImpl
	expressionMarker

	Value string `json:"val"`
}

func NewStringLiteral(value string) *StringLiteral {
	return &StringLiteral{nodeImpl: newNodeImpl(NodeStringLiteral), Value: value}
}

type VariableReference struct {
	nodeImpl
	expressionMarker

	Name string `json:"name"`
}

func NewVariableReference(name string) *VariableReference {
	return &VariableReference{nodeImpl: newNodeImpl(NodeVariableReference), Name: name}
}

// CallExpression names a callee and carries its argument expressions in
// source order. Arguments are handed to the builtin dispatcher unevaluated.
type CallExpression struct {
	nodeImpl
	expressionMarker

	Name string       `json:"name"`
	Args []Expression `json:"args"`
}

func NewCallExpression(name string, args []Expression) *CallExpression {
	return &CallExpression{nodeImpl: newNodeImpl(NodeCallExpression), Name: name, Args: args}
}

type BinaryOperator string

const (
	OpAdd      BinaryOperator = "+"
	OpSubtract BinaryOperator = "-"
)

type BinaryExpression struct {
	nodeImpl
	expressionMarker

	Op  BinaryOperator `json:"op"`
	Op1 Expression     `json:"op1"`
	Op2 Expression     `json:"op2"`
}

func NewBinaryExpression(op BinaryOperator, op1, op2 Expression) *BinaryExpression {
	return &BinaryExpression{nodeImpl: newNodeImpl(NodeBinaryExpression), Op: op, Op1: op1, Op2: op2}
}
