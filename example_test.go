package pollexec_test

import (
	"fmt"
	"time"

	pollexec "github.com/joeycumines/go-pollexec"
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// Example drives a timer-backed task to completion: the executor parks
// until the background worker publishes the value and fires the wake.
func Example() {
	ex, err := pollexec.New()
	if err != nil {
		panic(err)
	}

	task, err := pollexec.StartTimer(10*time.Millisecond, "timer fired")
	if err != nil {
		panic(err)
	}

	v, err := pollexec.BlockOn(ex, task)
	if err != nil {
		panic(err)
	}
	fmt.Println(v)

	// output:
	// timer fired
}

// Example_structuredLogging attaches a stumpy logger and drives a
// deterministic self-waking task, exposing the executor's park/resume
// cycle in the log stream.
func Example_structuredLogging() {
	logger := stumpy.L.New(
		stumpy.L.WithStumpy(
			stumpy.WithTimeField(``), // disable time field (consistent example output)
		),
		stumpy.L.WithWriter(logiface.WriterFunc[*stumpy.Event](func(e *stumpy.Event) error {
			fmt.Printf("%s}\n", e.Bytes())
			return nil
		})),
		stumpy.L.WithLevel(logiface.LevelDebug),
	)

	ex, err := pollexec.New(pollexec.WithLogger(logger.Logger()))
	if err != nil {
		panic(err)
	}

	v, err := pollexec.BlockOn(ex, pollexec.NewCountdown(1, 42))
	if err != nil {
		panic(err)
	}
	fmt.Println(v)

	// output:
	// {"lvl":"debug","attempt":"1","msg":"executor parked"}
	// {"lvl":"debug","attempt":"1","msg":"executor resumed"}
	// {"lvl":"debug","advances":"2","msg":"task completed"}
	// 42
}

// ExampleCompletion shows the mailbox driven directly: background work
// publishes through Complete, and BlockOn observes the value.
func ExampleCompletion() {
	ex, err := pollexec.New()
	if err != nil {
		panic(err)
	}

	c := pollexec.NewCompletion[string]()
	go c.Complete("published")

	v, err := pollexec.BlockOn(ex, c)
	if err != nil {
		panic(err)
	}
	fmt.Println(v)

	// output:
	// published
}
