package progress

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReporter_ConcurrentInc(t *testing.T) {
	r := New(1000, "Downloading")

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				r.Inc(1)
				r.AddBytes(2)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1000, r.Position())
	assert.Equal(t, 1000, r.Total())
	assert.Equal(t, int64(2000), r.Bytes())
	assert.Equal(t, 1.0, r.Percent())
}

func TestReporter_Percent(t *testing.T) {
	r := New(4, "x")
	assert.Equal(t, 0.0, r.Percent())
	r.Inc(1)
	assert.Equal(t, 0.25, r.Percent())
	r.Inc(10)
	assert.Equal(t, 1.0, r.Percent())

	assert.Equal(t, 1.0, New(0, "empty").Percent())
}

func TestReporter_LinesMode(t *testing.T) {
	var buf bytes.Buffer
	r := New(2, "Downloading", WithOutput(&buf, ModeLines))

	r.Inc(1)
	r.SetMessage("Fetching")
	r.Inc(1)
	r.Finish("Downloaded 2/2 images")
	r.Inc(1) // after Finish: no output

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		"Downloading 1/2",
		"Fetching 1/2",
		"Fetching 2/2",
		"Downloaded 2/2 images",
	}, lines)
	assert.Equal(t, "Downloaded 2/2 images", r.Summary())
}

func TestReporter_BarMode(t *testing.T) {
	var buf bytes.Buffer
	r := New(3, "Downloading", WithOutput(&buf, ModeBar))

	r.Inc(1)
	assert.Contains(t, buf.String(), "Downloading")
	assert.Contains(t, buf.String(), "1/3")

	r.Finish("done")
	r.Finish("ignored")
	assert.True(t, strings.HasSuffix(buf.String(), "done\n"))
	assert.NotContains(t, buf.String(), "ignored")
}

func TestReporter_SilentByDefault(t *testing.T) {
	r := New(1, "x")
	r.Inc(1)
	r.Finish("summary")
	assert.Equal(t, "summary", r.Summary())
}

func TestReporter_Elapsed(t *testing.T) {
	r := New(1, "x")
	time.Sleep(5 * time.Millisecond)
	assert.GreaterOrEqual(t, r.Elapsed(), 5*time.Millisecond)
}

func TestReporter_Println(t *testing.T) {
	t.Run("lines mode keeps order", func(t *testing.T) {
		var buf bytes.Buffer
		r := New(2, "Downloading", WithOutput(&buf, ModeLines))

		r.Inc(1)
		r.Println("   Downloaded: picsum_0001.jpg (1.0 KB)")
		r.Inc(1)

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		assert.Equal(t, []string{
			"Downloading 1/2",
			"   Downloaded: picsum_0001.jpg (1.0 KB)",
			"Downloading 2/2",
		}, lines)
	})

	t.Run("bar mode redraws below the line", func(t *testing.T) {
		var buf bytes.Buffer
		r := New(3, "Downloading", WithOutput(&buf, ModeBar))

		r.Inc(1)
		buf.Reset()
		r.Println("Download 2 failed")

		out := buf.String()
		assert.True(t, strings.HasPrefix(out, "\r\x1b[2KDownload 2 failed\n"), out)
		assert.Contains(t, out, "1/3")
	})

	t.Run("after finish", func(t *testing.T) {
		var buf bytes.Buffer
		r := New(1, "Downloading", WithOutput(&buf, ModeBar))
		r.Finish("done")
		buf.Reset()

		r.Println("late")
		assert.Equal(t, "late\n", buf.String())
	})
}

func TestReporter_ConcurrentPrintlnAndInc(t *testing.T) {
	var buf bytes.Buffer
	r := New(200, "Downloading", WithOutput(&buf, ModeLines))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				r.Inc(1)
				r.Println("event")
			}
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 400)
	assert.Equal(t, 200, strings.Count(buf.String(), "event\n"))
}
