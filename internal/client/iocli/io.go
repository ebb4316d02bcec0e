package iocli

//go:generate go tool moq -out io_mock.go . IO

// IO abstracts terminal input/output so commands can be tested
// without touching os.Stdin/os.Stdout.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	Write(p []byte) (n int, err error)
}
