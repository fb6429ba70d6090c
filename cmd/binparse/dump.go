package main

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/fire-peregrine/binparser-go"
	"github.com/fire-peregrine/binparser-go/internal/fieldspec"
)

// dump decodes the given input files according to the field spec and
// prints one line per field.
func dump(args []string) error {
	d, err := newDumper(args)
	if err != nil {
		return err
	}
	return d.run()
}

type dumper struct {
	infs   []string
	fields []fieldspec.Field
}

func newDumper(args []string) (*dumper, error) {
	ret := &dumper{}

	spec := ""
	i := 0
	for ; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			break
		}
		if arg == "-" || arg == "--" {
			i++
			break
		}

		switch arg {
		case "-s", "--spec":
			i++
			if i >= len(args) {
				return nil, errors.New("no field spec specified")
			}
			spec = args[i]

		default:
			return nil, errors.New("unrecognized option \"" + arg + "\"")
		}
	}

	// Any remaining args are input files.
	for ; i < len(args); i++ {
		ret.infs = append(ret.infs, args[i])
	}

	if spec == "" {
		return nil, errors.New("no field spec specified")
	}

	fields, err := fieldspec.Parse(spec)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errors.New("empty field spec")
	}
	ret.fields = fields

	return ret, nil
}

// run decodes each input in turn. A decode error is reported for its
// file and does not stop the remaining files; the parser is reused
// across files.
func (d *dumper) run() error {
	p := binparser.NewParser(nil)

	if len(d.infs) == 0 {
		buf, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		return d.dumpBuffer(p, "<stdin>", buf)
	}

	var firstErr error
	for _, inf := range d.infs {
		buf, err := ioutil.ReadFile(inf)
		if err == nil {
			err = d.dumpBuffer(p, inf, buf)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v: %v\n", inf, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (d *dumper) dumpBuffer(p *binparser.Parser, name string, buf []byte) error {
	fmt.Printf("== %v (%v bytes)\n", name, len(buf))
	p.Reset(buf)

	for i, f := range d.fields {
		label := f.Name
		if label == "" {
			label = fmt.Sprintf("%v[%v]", f.Token, i)
		}

		var (
			value string
			err   error
		)
		switch f.Kind {
		case fieldspec.Uint:
			var v uint64
			v, err = p.Uint64(f.N)
			value = fmt.Sprintf("%v", v)
		case fieldspec.Int:
			var v int64
			v, err = p.Int64(f.N)
			value = fmt.Sprintf("%v", v)
		case fieldspec.Flag:
			var v bool
			v, err = p.Bool()
			value = fmt.Sprintf("%v", v)
		case fieldspec.UGolomb:
			var v uint32
			v, err = p.UnsignedGolomb()
			value = fmt.Sprintf("%v", v)
		case fieldspec.SGolomb:
			var v int32
			v, err = p.SignedGolomb()
			value = fmt.Sprintf("%v", v)
		case fieldspec.Bytes:
			dst := make([]byte, f.N)
			err = p.Bytes(dst)
			value = fmt.Sprintf("% X", dst)
		case fieldspec.Align:
			if f.N == 1 {
				err = p.AlignByte()
			} else {
				err = p.AlignBytes(f.N)
			}
			value = fmt.Sprintf("-> byte %v", p.Pos().Byte)
		case fieldspec.Skip:
			err = p.Skip(0, f.N)
			value = fmt.Sprintf("-> byte %v, bit %v", p.Pos().Byte, p.Pos().Bit)
		}

		if err != nil {
			return fmt.Errorf("field %v: %v", label, err)
		}
		fmt.Printf("%-16v = %v\n", label, value)
	}

	pos := p.Pos()
	fmt.Printf("-- cursor at byte %v, bit %v of %v bytes\n", pos.Byte, pos.Bit, p.Len())
	return nil
}
