package stack

import (
	"encoding/hex"
	"fmt"
	"github.com/PIXRA-Network/typeconv/lib/item"
	"github.com/PIXRA-Network/typeconv/lib/nbt"
	"github.com/PIXRA-Network/typeconv/network/protocol"
	"github.com/spf13/cobra"
	"strconv"
)

var (
	encodeCmd = &cobra.Command{
		Use:   "encode [id] [meta] [count]",
		Short: "Encodes an item and prints the wire item stack",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("meta must be a number: %w", err)
			}
			count, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("count must be a number: %w", err)
			}

			it := item.New(args[0], meta, count)
			if name, _ := cmd.Flags().GetString("custom-name"); name != "" {
				if err := it.SetCustomName(name); err != nil {
					return err
				}
			}
			if lore, _ := cmd.Flags().GetStringSlice("lore"); len(lore) > 0 {
				if err := setLore(it, lore); err != nil {
					return err
				}
			}

			printStack(converter.CoreItemStackToNet(it))
			return nil
		},
	}
	decodeCmd = &cobra.Command{
		Use:   "decode [id] [meta] [count] [blockRuntimeID] [extraDataHex]",
		Short: "Decodes a wire item stack and prints the item",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			var values [4]int32
			for i, name := range []string{"id", "meta", "count", "blockRuntimeID"} {
				v, err := strconv.ParseInt(args[i], 10, 32)
				if err != nil {
					return fmt.Errorf("%s must be a number: %w", name, err)
				}
				values[i] = int32(v)
			}
			extra, err := hex.DecodeString(args[4])
			if err != nil {
				return fmt.Errorf("extraDataHex must be hex encoded: %w", err)
			}

			it, err := converter.NetItemStackToCore(protocol.ItemStack{
				ID:             values[0],
				Meta:           values[1],
				Count:          values[2],
				BlockRuntimeID: values[3],
				RawExtraData:   extra,
			})
			if err != nil {
				return err
			}
			printItem(it)
			return nil
		},
	}
)

func setLore(it *item.Item, lines []string) error {
	lore := nbt.NewList()
	for _, line := range lines {
		if err := lore.Push(nbt.String(line)); err != nil {
			return err
		}
	}
	tag := it.NamedTag()
	display, err := tag.GetCompound(item.TagDisplay)
	if err != nil {
		return err
	}
	if display == nil {
		display = nbt.NewCompound()
		tag.Set(item.TagDisplay, display)
	}
	display.Set(item.TagDisplayLore, lore)
	return it.SetNamedTag(tag)
}

func printStack(s protocol.ItemStack) {
	fmt.Printf("%-18s: %d\n", "id", s.ID)
	fmt.Printf("%-18s: %d\n", "meta", s.Meta)
	fmt.Printf("%-18s: %d\n", "count", s.Count)
	fmt.Printf("%-18s: %d\n", "block runtime id", s.BlockRuntimeID)
	fmt.Printf("%-18s: %s\n", "extra data", hex.EncodeToString(s.RawExtraData))
}

func printItem(it *item.Item) {
	fmt.Printf("%-18s: %s\n", "name", it.Name())
	fmt.Printf("%-18s: %d\n", "meta", it.Meta())
	fmt.Printf("%-18s: %d\n", "count", it.Count())
	if name := it.CustomName(); name != "" {
		fmt.Printf("%-18s: %s\n", "custom name", name)
	}
	tag := it.NamedTag()
	for _, name := range tag.Names() {
		fmt.Printf("%-18s: %s (%s)\n", "tag", name, tag.Get(name).Type())
	}
}
