//go:build assert_enabled

package sim

func Assert(condition bool) {
	if !condition {
		panic("assert failed")
	}
}
