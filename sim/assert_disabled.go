//go:build !assert_enabled

package sim

func Assert(condition bool) {
}
