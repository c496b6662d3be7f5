// Package dice loads dice configurations.
//
// A die is written as a comma-separated list of integer faces, for example
// "2,2,4,4,9,9". Dice come from command-line arguments or from a YAML file:
//
//	dice:
//	  - 2,2,4,4,9,9
//	  - 1,1,6,6,8,8
//	  - 3,3,5,5,7,7
//
// Any malformed entry fails the whole load with an error wrapping
// domain.ErrConfiguration that quotes the offending input.
package dice
