// Command vtwire inspects vtgate protobuf payloads.
package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/anirudhraja/vtwire"
	"github.com/anirudhraja/vtwire/internal/config"
	"github.com/anirudhraja/vtwire/internal/logging"
	"github.com/anirudhraja/vtwire/proto/query"
	"github.com/anirudhraja/vtwire/proto/topodata"
	"github.com/anirudhraja/vtwire/proto/vtgate"
	"github.com/anirudhraja/vtwire/proto/vtrpc"
	"github.com/anirudhraja/vtwire/registry"
	"github.com/anirudhraja/vtwire/schema"
)

const codecKey = "codec"

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "vtwire:", err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "vtwire",
		Usage:     "inspect vtgate protobuf payloads",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "TOML configuration file",
				EnvVars: []string{"VTWIRE_CONFIG"},
			},
			&cli.StringSliceFlag{
				Name:  "proto-path",
				Usage: "directory searched for .proto files and imports",
			},
			&cli.StringSliceFlag{
				Name:  "proto",
				Usage: ".proto file to load next to the built-in types",
			},
		},
		Before: func(c *cli.Context) error {
			codec, err := setup(c, stderr)
			if err != nil {
				return err
			}
			c.App.Metadata = map[string]interface{}{codecKey: codec}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "list registered message and enum types",
				Action: list,
			},
			{
				Name:      "describe",
				Usage:     "print the fields of a message or the values of an enum",
				ArgsUsage: "TYPE",
				Action:    describe,
			},
			{
				Name:  "decode",
				Usage: "decode a payload and print it",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "type", Aliases: []string{"t"}, Usage: "message type", Required: true},
					&cli.StringFlag{Name: "hex", Usage: "payload as hex"},
					&cli.StringFlag{Name: "in", Usage: "file holding the raw payload, - for stdin"},
					&cli.StringFlag{Name: "format", Value: "json", Usage: "output format: json or msgpack"},
				},
				Action: decode,
			},
			{
				Name:   "sample",
				Usage:  "print a sample ExecuteBatchKeyspaceIdsRequest as hex",
				Action: sample,
			},
		},
	}
}

func setup(c *cli.Context, stderr io.Writer) (*vtwire.Codec, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	logger, err := logging.NewWithOutput(cfg.Log, stderr)
	if err != nil {
		return nil, err
	}

	dirs := append(cfg.Proto.Paths, c.StringSlice("proto-path")...)
	reg := registry.New(registry.WithLogger(logger), registry.WithProtoDirectories(dirs...))
	codec, err := vtwire.New(
		vtwire.WithRegistry(reg),
		vtwire.WithLogger(logger),
		vtwire.WithWireOptions(cfg.WireOptions()),
	)
	if err != nil {
		return nil, err
	}
	files := append(cfg.Proto.Files, c.StringSlice("proto")...)
	if err := codec.LoadProtoFile(files...); err != nil {
		return nil, err
	}
	return codec, nil
}

func codecFrom(c *cli.Context) *vtwire.Codec {
	return c.App.Metadata[codecKey].(*vtwire.Codec)
}

func list(c *cli.Context) error {
	codec := codecFrom(c)
	w := c.App.Writer
	for _, name := range codec.ListMessages() {
		fmt.Fprintf(w, "message %s\n", name)
	}
	for _, name := range codec.ListEnums() {
		fmt.Fprintf(w, "enum %s\n", name)
	}
	return nil
}

func describe(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("describe needs exactly one TYPE")
	}
	name := c.Args().First()
	reg := codecFrom(c).Registry()
	w := c.App.Writer

	if ed, ok := reg.Enum(name); ok {
		fmt.Fprintf(w, "enum %s\n", name)
		for _, v := range ed.Values() {
			fmt.Fprintf(w, "  %s = %d\n", v.Name, v.Number)
		}
		return nil
	}
	desc, err := reg.Describe(name)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "message %s\n", name)
	for _, fd := range desc.SortedFields() {
		fmt.Fprintf(w, "  %s\n", formatField(fd))
	}
	return nil
}

func formatField(fd *schema.FieldDescriptor) string {
	parts := []string{fmt.Sprintf("%d", fd.Number), fd.Name}
	if fd.IsRepeated() {
		parts = append(parts, "repeated")
	}
	typ := string(fd.Kind)
	if fd.Reference != "" {
		typ += " " + fd.Reference
	}
	parts = append(parts, typ)
	if fd.IsPacked() {
		parts = append(parts, "[packed]")
	}
	if fd.Extension {
		parts = append(parts, "[extension]")
	}
	return strings.Join(parts, " ")
}

func decode(c *cli.Context) error {
	data, err := readPayload(c)
	if err != nil {
		return err
	}
	codec := codecFrom(c)
	v, err := codec.Unmarshal(data, c.String("type"))
	if err != nil {
		return err
	}
	out := codec.ToMap(v)

	w := c.App.Writer
	switch c.String("format") {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "msgpack":
		b, err := msgpack.Marshal(out)
		if err != nil {
			return errors.Wrap(err, "encode msgpack")
		}
		_, err = w.Write(b)
		return err
	default:
		return errors.Errorf("unknown format %q (want json or msgpack)", c.String("format"))
	}
}

func readPayload(c *cli.Context) ([]byte, error) {
	switch {
	case c.IsSet("hex") && c.IsSet("in"):
		return nil, errors.New("--hex and --in are exclusive")
	case c.IsSet("hex"):
		data, err := hex.DecodeString(strings.TrimSpace(c.String("hex")))
		return data, errors.Wrap(err, "parse --hex")
	case c.IsSet("in"):
		path := c.String("in")
		if path == "-" {
			data, err := io.ReadAll(c.App.Reader)
			return data, errors.Wrap(err, "read stdin")
		}
		data, err := os.ReadFile(path)
		return data, errors.Wrapf(err, "read %s", path)
	default:
		return nil, errors.New("one of --hex or --in is required")
	}
}

func sample(c *cli.Context) error {
	req, err := sampleRequest(codecFrom(c).Registry())
	if err != nil {
		return err
	}
	data, err := codecFrom(c).Encode(req)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, hex.EncodeToString(data))
	return nil
}

func sampleRequest(r *registry.Registry) (*vtgate.ExecuteBatchKeyspaceIdsRequest, error) {
	req, err := vtgate.NewExecuteBatchKeyspaceIdsRequest(r)
	if err != nil {
		return nil, err
	}
	caller, err := vtrpc.NewCallerID(r)
	if err != nil {
		return nil, err
	}
	caller.SetPrincipal("vtwire")
	caller.SetComponent("sample")
	req.SetCallerId(caller)

	for i, sql := range []string{"insert into t(id) values (:id)", "update t set n = n + 1 where id = :id"} {
		bv, err := query.NewBindVariable(r)
		if err != nil {
			return nil, err
		}
		bv.SetType(query.Type_INT64)
		bv.SetValue_([]byte(fmt.Sprint(i + 1)))
		entry, err := query.NewBoundQuery_BindVariablesEntry(r)
		if err != nil {
			return nil, err
		}
		entry.SetKey("id")
		entry.SetValue_(bv)
		bq, err := query.NewBoundQuery(r)
		if err != nil {
			return nil, err
		}
		bq.SetSql(sql)
		bq.AddBindVariable(entry)

		q, err := vtgate.NewBoundKeyspaceIdQuery(r)
		if err != nil {
			return nil, err
		}
		q.SetQuery(bq)
		q.SetKeyspace("commerce")
		q.AddKeyspaceId([]byte{byte(0x10 * (i + 1))})
		req.AddQuery(q)
	}
	req.SetTabletType(topodata.TabletType_MASTER)
	req.SetAsTransaction(true)
	return req, nil
}
