// Package hcl_adapter loads list walkthroughs written in HCL and translates
// them into the format-agnostic config.Model.
//
// A walkthrough file is a sequence of `step "<op>" { ... }` blocks. Step
// attributes are evaluated as cty values and converted into Go integers, so
// any literal HCL expression (including arithmetic) is accepted.
package hcl_adapter
