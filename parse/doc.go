// Package parse reads descriptors and hierarchies from YAML text.
//
// # Notation
//
// Untagged scalars are literals and untagged collections are records and
// tuples:
//
//	k: 'a'              # {k: 'a'; v: [1, true]}
//	v: [1, true]
//
// Tags name everything else:
//
//	!never ~  !unknown ~  !boolean ~  !number ~  !string ~  !null ~
//	!readonly [1, 2]
//	!union ['a', 'b', !number ~]
//	!intersect [!string ~, 'a']
//	!class Dog
//	!expr "1 + 2"
//	!tagged {discriminant: k, variants: [{k: 'a'}, {k: 'b'}]}
//
// The value under a primitive tag is ignored.  An !expr scalar is evaluated
// with expr-lang and its result, which must be made of scalars, lists and
// maps, is read back as literals.
//
// JSON input is accepted, being YAML.
//
// # Hierarchies
//
// A hierarchy document maps each class name to its parent, with null or
// the empty string for roots:
//
//	Animal: ~
//	Dog: Animal
package parse
