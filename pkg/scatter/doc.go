// Package scatter holds the pure logic behind the schools scatter plot:
// parsing search and gemeente filter input, matching points against
// terms, locating highlight ranges in labels, deriving stable colors from
// gemeente names and scaling point sizes to marker radii.
//
// Every function is side-effect free and safe for concurrent use.
package scatter
