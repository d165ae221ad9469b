package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/withreach/gip-checkout/pkg/checkout"
	"github.com/withreach/gip-checkout/pkg/payload"
)

var errNotObject = errors.New("input must be an object")

func newValidateCmd() *cobra.Command {
	var (
		entity     string
		consumerIP string
	)

	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a payload and print it normalized",
		Long: `Validate reads a JSON or YAML payload, validates it as the given entity and
prints the normalized result as JSON. Files ending in .yaml or .yml are read
as YAML; anything else, including stdin ("-" or no argument), as JSON.

Entities: ` + strings.Join(checkout.Entities(), ", "),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []checkout.Option
			if consumerIP != "" {
				opts = append(opts, checkout.WithConsumerIP(consumerIP))
			}
			validator, err := checkout.Entity(entity, opts...)
			if err != nil {
				return err
			}

			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			in, err := readPayload(cmd.InOrStdin(), path)
			if err != nil {
				return err
			}

			out, err := validator(in)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().StringVarP(&entity, "entity", "e", checkout.EntityOrder, "entity to validate")
	cmd.Flags().StringVar(&consumerIP, "consumer-ip", "", "address used for Consumer.IpAddress when the order leaves it out")
	return cmd
}

func readPayload(stdin io.Reader, path string) (payload.Object, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var v any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &v)
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		err = dec.Decode(&v)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	o, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w, got %s", errNotObject, payload.TypeOf(v))
	}
	return o, nil
}
