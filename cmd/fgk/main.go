package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/axiomhq/fgk"
)

var helpMsg = `fgk - adaptive Huffman coding

Usage:
   fgk encode <alphabet-file> [message-file]   - encode a message over the alphabet
   fgk decode <alphabet-file> [message-file]   - decode a message over the alphabet
   fgk -h/--help                               - print this help message

The alphabet is the first line of <alphabet-file>. Escapes \a \b \f \v \n \t \r \\ \' \" \?
stand for the character they name. Every symbol of the message must be in the alphabet.

With a message file, the result is written next to it as <message-file>.encoded or
<message-file>.decoded. Without one, fgk reads STDIN and writes STDOUT. A line break
at the end of encoded input is ignored.

Examples:
   fgk encode alphabet.txt message.txt          # writes message.txt.encoded
   fgk decode alphabet.txt message.txt.encoded  # writes message.txt.encoded.decoded
   printf hello | fgk encode abc.txt | fgk decode abc.txt

Set $FGK_BUFSIZE to change the buffer size. The default is ` + strconv.Itoa(fgk.DefaultBufferSize) + ` bytes.`

func main() {
	if len(os.Args) == 1 {
		fmt.Fprintln(os.Stderr, "error: need at least one argument\n"+helpMsg)
		os.Exit(1)
	}
	if os.Args[1] == "-h" || os.Args[1] == "--help" {
		fmt.Println(helpMsg)
		return
	}
	cmd := os.Args[1]
	if cmd != "encode" && cmd != "decode" {
		fmt.Fprintln(os.Stderr, "error: unknown command "+strconv.Quote(cmd)+"\n"+helpMsg)
		os.Exit(1)
	}
	if len(os.Args) < 3 || len(os.Args) > 4 {
		fmt.Fprintln(os.Stderr, "error: need an alphabet file and at most one message file\n"+helpMsg)
		os.Exit(1)
	}

	alphabet, err := loadAlphabet(os.Args[2])
	if err != nil {
		fatal(err)
	}
	c := fgk.NewCoding(alphabet)

	if s := os.Getenv("FGK_BUFSIZE"); s != "" {
		size, err := strconv.Atoi(s)
		if err != nil || size <= 0 {
			fatal(fmt.Errorf("invalid buffer size %q", s))
		}
		c.SetBufferSize(size)
	}

	if len(os.Args) == 3 {
		if cmd == "encode" {
			err = c.Encode(os.Stdout, os.Stdin)
		} else {
			err = decode(c, os.Stdout, os.Stdin)
		}
		if err != nil {
			fatal(err)
		}
		return
	}

	path := os.Args[3]
	if err := codeFile(c, cmd, path); err != nil {
		fatal(err)
	}
	if cmd == "encode" {
		fmt.Println("message encoded:", path+".encoded")
	} else {
		fmt.Println("message decoded:", path+".decoded")
	}
}

// loadAlphabet parses the first line of the file at path.
func loadAlphabet(path string) (*fgk.Alphabet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && line == "" {
		return nil, fmt.Errorf("read alphabet %s: %w", path, err)
	}
	return fgk.ParseAlphabet(strings.TrimRight(line, "\r\n"))
}

// codeFile codes the whole file in memory and writes the result only if
// coding succeeded.
func codeFile(c *fgk.Coding, cmd, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var (
		out    bytes.Buffer
		suffix string
	)
	if cmd == "encode" {
		suffix = ".encoded"
		err = c.Encode(&out, bytes.NewReader(data))
	} else {
		suffix = ".decoded"
		err = decode(c, &out, bytes.NewReader(data))
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path+suffix, out.Bytes(), 0o644)
}

// decode decodes all bits read from src, ignoring a trailing line break.
func decode(c *fgk.Coding, dst io.Writer, src io.Reader) error {
	data, err := io.ReadAll(src)
	if err != nil {
		return err
	}
	return c.Decode(dst, bytes.NewReader(bytes.TrimRight(data, "\r\n")))
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
