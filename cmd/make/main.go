package main

import (
	"fmt"
	"runtime"
	"strconv"

	"github.com/gen2brain/beeep"
	. "github.com/storozhukBM/build"
)

const coverageName = `coverage.out`
const binDirName = `bin`
const exampleBinary = `./example/example`

var parallelism = strconv.Itoa(runtime.NumCPU() * 4)

var b = NewBuild(BuildOptions{})
var commands = []Command{
	{Name: `build`, Body: b.RunCmd(Go, `build`, `./...`)},

	{Name: `buildInlineBounds`, Body: b.ShRunCmd(
		Go, `build`, `-gcflags='-m -d=ssa/check_bce/debug=1'`, `.`,
	)},

	{Name: `clean`, Body: clean},
	{Name: `cleanAll`, Body: func() { clean(); cleanExecutables() }},
	{Name: `test`, Body: test},
	{Name: `testDebug`, Body: testDebug},
	{Name: `testRace`, Body: b.RunCmd(Go, `test`, `-race`, `./scratch/...`)},
	{Name: `bench`, Body: b.RunCmd(Go, `test`, `-run=^$`, `-bench=.`, `-benchmem`, `.`)},
	{Name: `example`, Body: func() {
		b.Run(Go, `build`, `-o`, exampleBinary, `./example`)
		b.Run(exampleBinary)
	}},

	{Name: `lint`, Body: cilint},

	{Name: `coverage`, Body: func() {
		clean()
		b.Run(
			Go, `test`, `-coverpkg=./...`, `-coverprofile=`+coverageName,
			`./...`,
		)
		b.Run(Go, `tool`, `cover`, `-html=`+coverageName)
	}},

	{Name: `notify`, Body: notify},
}

func test() {
	defer forceClean()
	b.Run(Go, `test`, `-parallel`, parallelism, `./...`)
}

// testDebug runs the suite with layout contract checks compiled in.
func testDebug() {
	defer forceClean()
	b.Run(Go, `test`, `-tags`, `debug`, `-parallel`, parallelism, `-v`, `./...`)
}

func clean() {
	b.Once(`cleanOnce`, func() { forceClean() })
}

func forceClean() {
	b.Run(Go, `clean`, `./...`)
	b.Run(`rm`, `-f`, coverageName)
	b.Run(`rm`, `-f`, exampleBinary)
	// sh run used to expand wildcard
	b.ForceShRun(`rm`, `-f`, `./*.test`)
}

func cleanExecutables() {
	b.Run(`rm`, `-rf`, binDirName)
}

func notify() {
	notifyErr := beeep.Notify("bump", "build finished", "")
	if notifyErr != nil {
		fmt.Printf("can't send notification: %v\n", notifyErr)
	}
}

func main() {
	b.Register(commands)
	b.BuildFromOsArgs()
}
