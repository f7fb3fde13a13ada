package ingredient

import (
	"fmt"
	"github.com/PIXRA-Network/typeconv/cmd/util"
	"github.com/PIXRA-Network/typeconv/lib/item"
	"github.com/PIXRA-Network/typeconv/lib/recipe"
	"github.com/PIXRA-Network/typeconv/network/convert"
	"github.com/PIXRA-Network/typeconv/network/protocol"
	"github.com/spf13/cobra"
	"strconv"
)

var (
	converter *convert.TypeConverter

	// IngredientCommands represents the ingredient command group
	IngredientCommands = &cobra.Command{
		Use:               "ingredient",
		Short:             "Convert recipe ingredients to and from the wire format",
		PersistentPreRunE: setupConverter,
	}

	// encodeCmd represents the encode command
	encodeCmd = &cobra.Command{
		Use:   "encode [exact|wildcard|tag] [id] [meta]",
		Short: "Encodes a recipe ingredient and prints the wire descriptor",
		Long: util.WrapString(`Encodes a recipe ingredient. "exact" takes an item id and meta, ` +
			`"wildcard" an item id that matches any meta, "tag" an item tag name.`),
		Args: cobra.RangeArgs(2, 3),
		RunE: runEncode,
	}

	// decodeCmd represents the decode command
	decodeCmd = &cobra.Command{
		Use:   "decode [networkID] [meta]",
		Short: "Decodes a numeric wire descriptor and prints the recipe ingredient",
		Args:  cobra.ExactArgs(2),
		RunE:  runDecode,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitConfig)

	util.SetupConverterFlags(IngredientCommands)

	IngredientCommands.AddCommand(encodeCmd)
	IngredientCommands.AddCommand(decodeCmd)
}

// setupConverter creates the converter of the configured protocol
func setupConverter(cmd *cobra.Command, _ []string) error {
	registry, conf, err := util.SetupRegistry(cmd)
	if err != nil {
		return err
	}
	converter, err = registry.Get(conf.DefaultProtocol)
	return err
}

func runEncode(_ *cobra.Command, args []string) error {
	var in recipe.Ingredient
	switch args[0] {
	case "exact":
		meta := 0
		if len(args) == 3 {
			m, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("meta must be a number: %w", err)
			}
			meta = m
		}
		exact, err := recipe.NewExact(item.New(args[1], meta, 1))
		if err != nil {
			return err
		}
		in = exact
	case "wildcard":
		in = recipe.MetaWildcardIngredient{ItemID: args[1]}
	case "tag":
		in = recipe.TagWildcardIngredient{TagName: args[1]}
	default:
		return fmt.Errorf("invalid ingredient kind %s (expected one of: exact, wildcard, tag)", args[0])
	}

	out, err := converter.CoreRecipeIngredientToNet(in)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func runDecode(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 16)
	if err != nil {
		return fmt.Errorf("networkID must be a number: %w", err)
	}
	meta, err := strconv.ParseInt(args[1], 10, 16)
	if err != nil {
		return fmt.Errorf("meta must be a number: %w", err)
	}

	out, err := converter.NetRecipeIngredientToCore(protocol.RecipeIngredient{
		Descriptor: protocol.IntIDMetaItemDescriptor{ID: int16(id), Meta: int16(meta)},
		Count:      1,
	})
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
