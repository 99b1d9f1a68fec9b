package cardclient

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

const (
	progressBarWidth    = 32
	progressRenderEvery = 120 * time.Millisecond
)

// progressReader оборачивает поток и рисует ASCII-индикатор в stderr.
type progressReader struct {
	r     io.Reader
	label string
	total int64
	done  int64
	last  time.Time
	ended bool
}

func newProgressReader(r io.Reader, label string, total int64) *progressReader {
	return &progressReader{r: r, label: label, total: total}
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	p.done += int64(n)
	p.render(err != nil)
	return n, err
}

func (p *progressReader) render(final bool) {
	if p.ended {
		return
	}

	now := time.Now()
	if !final && now.Sub(p.last) < progressRenderEvery {
		return
	}
	p.last = now

	var line strings.Builder
	line.WriteString(p.label)
	line.WriteByte(' ')

	if p.total > 0 {
		ratio := float64(p.done) / float64(p.total)
		if ratio > 1 {
			ratio = 1
		}
		filled := int(ratio*float64(progressBarWidth) + 0.5)
		line.WriteByte('[')
		line.WriteString(strings.Repeat("=", filled))
		line.WriteString(strings.Repeat(" ", progressBarWidth-filled))
		line.WriteString(fmt.Sprintf("] %3d%% %s/%s", int(ratio*100+0.5), humanBytes(p.done), humanBytes(p.total)))
	} else {
		line.WriteString(humanBytes(p.done))
		line.WriteString(" transferred")
	}

	if final {
		p.ended = true
		fmt.Fprintf(os.Stderr, "\r%s\n", line.String())
		return
	}
	fmt.Fprintf(os.Stderr, "\r%s", line.String())
}

func humanBytes(v int64) string {
	units := []string{"B", "KB", "MB", "GB", "TB"}
	value := float64(v)
	unit := 0
	for value >= 1024 && unit < len(units)-1 {
		value /= 1024
		unit++
	}

	if unit == 0 {
		return fmt.Sprintf("%d %s", v, units[unit])
	}
	return fmt.Sprintf("%.1f %s", value, units[unit])
}
