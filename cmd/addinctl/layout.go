package main

import (
	"encoding/json"
	"fmt"
	"unsafe"

	"github.com/spf13/cobra"

	"github.com/reglet-dev/addin-sdk/go/internal/abi"
)

// Layout is the host-visible binary layout on the running platform.
type Layout struct {
	VariantSize     uintptr            `json:"variant_size"`
	TmSize          uintptr            `json:"tm_size"`
	DestructorSlots int                `json:"destructor_slots"`
	Offsets         map[string]uintptr `json:"offsets"`
}

func currentLayout() Layout {
	return Layout{
		VariantSize:     unsafe.Sizeof(abi.Variant{}),
		TmSize:          unsafe.Sizeof(abi.Tm{}),
		DestructorSlots: abi.DestructorSlots,
		Offsets: map[string]uintptr{
			"init_done":     abi.OffsetInitDone,
			"lang_extender": abi.OffsetLangExtender,
			"locale":        abi.OffsetLocale,
			"user_language": abi.OffsetUserLanguage,
		},
	}
}

// NewLayoutCmd creates the layout subcommand.
func NewLayoutCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the ABI layout of variants and add-in objects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			l := currentLayout()
			if asJSON {
				data, err := json.MarshalIndent(l, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "tVariant size:      %d\n", l.VariantSize)
			fmt.Fprintf(cmd.OutOrStdout(), "struct tm size:     %d\n", l.TmSize)
			fmt.Fprintf(cmd.OutOrStdout(), "destructor slots:   %d\n", l.DestructorSlots)
			fmt.Fprintf(cmd.OutOrStdout(), "offset init/done:   %d\n", l.Offsets["init_done"])
			fmt.Fprintf(cmd.OutOrStdout(), "offset extender:    %d\n", l.Offsets["lang_extender"])
			fmt.Fprintf(cmd.OutOrStdout(), "offset locale:      %d\n", l.Offsets["locale"])
			fmt.Fprintf(cmd.OutOrStdout(), "offset user lang:   %d\n", l.Offsets["user_language"])
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}
