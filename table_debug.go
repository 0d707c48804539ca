//go:build fixedtable_debug

package fixedtable

const debugging = true

func assert(cond bool, message string) {
	if !cond {
		panic(message)
	}
}
