//go:build darwin || freebsd

package fileinfo

import (
	"time"

	"golang.org/x/sys/unix"
)

func statTimes(st *unix.Stat_t) (access, write, creation time.Time) {
	return timespecTime(st.Atim), timespecTime(st.Mtim), timespecTime(st.Btim)
}
