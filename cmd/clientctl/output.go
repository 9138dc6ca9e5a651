package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/BruksfildServices01/client-registry/internal/dto"
)

func printRows(w io.Writer, format string, rows []dto.ClientRowDTO) error {
	switch format {
	case "json":
		return writeJSON(w, rows)
	case "yaml":
		return writeYAML(w, rows)
	case "table", "":
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}

	if len(rows) == 0 {
		fmt.Fprintln(w, "No clients found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSECONDNAME\tEMAIL\tPHONE")
	for _, r := range rows {
		phone := "-"
		if r.Phone != nil {
			phone = *r.Phone
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", r.ClientID, r.ClientName, r.ClientSecondname, r.ClientEmail, phone)
	}
	return tw.Flush()
}

func printPhones(w io.Writer, format string, phones []dto.PhoneDTO) error {
	switch format {
	case "json":
		return writeJSON(w, phones)
	case "yaml":
		return writeYAML(w, phones)
	case "table", "":
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}

	if len(phones) == 0 {
		fmt.Fprintln(w, "No phones found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPHONE")
	for _, p := range phones {
		fmt.Fprintf(tw, "%d\t%s\n", p.ID, p.Phone)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
