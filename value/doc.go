// Package value defines the tagged scalar type stored in every table cell.
//
// A Value is one of Integer, Real, Text, Boolean, or Null. Values are
// compared by variant first and then by content: a Text("1") never equals
// an Integer(1), and two Values of different variants are never equal.
package value
