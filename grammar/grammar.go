package grammar

// Constraint is the value of a "pragma solidity" directive: alternatives
// separated by "||", each a space-separated set of comparators that must
// all hold.
// Example: "^0.5.6", ">=0.4.22 <0.6.0", "0.4.24 || ^0.5.0"
type Constraint struct {
	Ranges []*Range `@@ ( "||" @@ )*`
}

type Range struct {
	Comparators []*Comparator `@@+`
}

// Comparator is an optional operator applied to a possibly partial version.
// Example: "^0.5.6", ">=0.4", "0.5.6"
type Comparator struct {
	Op      string   `@Op?`
	Version *Version `@@`
}

// Version keeps one to three dot-separated components as written.
type Version struct {
	Parts []int `@Number ( "." @Number ( "." @Number )? )?`
}
