package fileinfo

import (
	"time"

	"golang.org/x/sys/unix"
)

// Linux stat(2) has no birth time; the status-change time stands in for it.
func statTimes(st *unix.Stat_t) (access, write, creation time.Time) {
	return timespecTime(st.Atim), timespecTime(st.Mtim), timespecTime(st.Ctim)
}
