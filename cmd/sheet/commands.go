package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"

	"github.com/tabuleirodocaos/sheet-api/internal/engine/caosrules"
	"github.com/tabuleirodocaos/sheet-api/internal/entities/caos"
	"github.com/tabuleirodocaos/sheet-api/internal/orchestrators/character"
	"github.com/tabuleirodocaos/sheet-api/internal/pkg/idgen"
	redisclient "github.com/tabuleirodocaos/sheet-api/internal/redis"
	characterrepo "github.com/tabuleirodocaos/sheet-api/internal/repositories/character"
)

var (
	redisAddr string

	createName     string
	createPlayerID string
	createAttrs    []int32

	payCost     int64
	payFromBank bool

	xpAmount int32
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a level-1 character",
	RunE:  runCreate,
}

var showCmd = &cobra.Command{
	Use:   "show <character-id>",
	Short: "Show a character sheet with derived stats",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var listCmd = &cobra.Command{
	Use:   "list <player-id>",
	Short: "List a player's characters",
	Args:  cobra.ExactArgs(1),
	RunE:  runList,
}

var setAttributeCmd = &cobra.Command{
	Use:   "set-attribute <character-id> <attribute> <value>",
	Short: "Set a base attribute and recalculate derived stats",
	Args:  cobra.ExactArgs(3),
	RunE:  runSetAttribute,
}

var payCmd = &cobra.Command{
	Use:   "pay <character-id>",
	Short: "Pay a cost in cobre from the purse",
	Args:  cobra.ExactArgs(1),
	RunE:  runPay,
}

var grantXPCmd = &cobra.Command{
	Use:   "grant-xp <character-id>",
	Short: "Award experience points",
	Args:  cobra.ExactArgs(1),
	RunE:  runGrantXP,
}

func init() {
	createCmd.Flags().StringVar(&createName, "name", "", "character name")
	createCmd.Flags().StringVar(&createPlayerID, "player", "", "player ID")
	createCmd.Flags().Int32SliceVar(&createAttrs, "attributes", nil,
		"six attribute values: agilidade,corpo,influencia,mente,essencia,instinto")

	payCmd.Flags().Int64Var(&payCost, "cost", 0, "cost in cobre")
	payCmd.Flags().BoolVar(&payFromBank, "bank", false, "pay from the bank instead of the physical purse")

	grantXPCmd.Flags().Int32Var(&xpAmount, "amount", 0, "XP to award")
}

// newService wires the redis repository, the rules engine and the
// orchestrator.
func newService() (character.Service, error) {
	client, err := redisclient.NewClient(redisAddr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	eng, err := caosrules.NewAdapter(&caosrules.AdapterConfig{
		DiceRoller: dice.DefaultRoller,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	svc, err := character.New(&character.Config{
		CharacterRepo: mustRepo(client),
		Engine:        eng,
		IDGenerator:   idgen.NewUUID("char"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create orchestrator: %w", err)
	}
	return svc, nil
}

func mustRepo(client redisclient.Client) characterrepo.Repository {
	repo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client})
	if err != nil {
		// Only reachable with a nil client
		panic(err)
	}
	return repo
}

func runCreate(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	var attrs caos.Attributes
	if len(createAttrs) == 6 {
		attrs = caos.Attributes{
			Agilidade:  createAttrs[0],
			Corpo:      createAttrs[1],
			Influencia: createAttrs[2],
			Mente:      createAttrs[3],
			Essencia:   createAttrs[4],
			Instinto:   createAttrs[5],
		}
	} else if len(createAttrs) != 0 {
		return fmt.Errorf("expected 6 attribute values, got %d", len(createAttrs))
	}

	out, err := svc.CreateCharacter(cmd.Context(), &character.CreateCharacterInput{
		Name:       createName,
		PlayerID:   createPlayerID,
		Attributes: attrs,
	})
	if err != nil {
		return err
	}
	return printJSON(out)
}

func runShow(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	out, err := svc.GetCharacter(cmd.Context(), &character.GetCharacterInput{ID: args[0]})
	if err != nil {
		return err
	}
	return printJSON(out)
}

func runList(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	out, err := svc.ListCharacters(cmd.Context(), &character.ListCharactersInput{PlayerID: args[0]})
	if err != nil {
		return err
	}
	return printJSON(out)
}

func runSetAttribute(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	var value int32
	if _, err := fmt.Sscanf(args[2], "%d", &value); err != nil {
		return fmt.Errorf("invalid attribute value %q", args[2])
	}

	attr, ok := attributeByName(args[1])
	if !ok {
		return fmt.Errorf("unknown attribute %q", args[1])
	}

	got, err := svc.GetCharacter(cmd.Context(), &character.GetCharacterInput{ID: args[0]})
	if err != nil {
		return err
	}

	attrs := got.Character.Attributes
	attrs.Set(attr, value)

	out, err := svc.UpdateAttributes(cmd.Context(), &character.UpdateAttributesInput{
		ID:         args[0],
		Attributes: attrs,
	})
	if err != nil {
		return err
	}

	for _, w := range out.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	return printJSON(out)
}

func runPay(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	from := caos.PurseLocationPhysical
	if payFromBank {
		from = caos.PurseLocationBank
	}

	out, err := svc.MakePayment(cmd.Context(), &character.MakePaymentInput{
		ID:         args[0],
		CostCopper: payCost,
		From:       from,
	})
	if err != nil {
		return err
	}
	return printJSON(out)
}

func runGrantXP(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	out, err := svc.GainExperience(cmd.Context(), &character.GainExperienceInput{
		ID:     args[0],
		Amount: xpAmount,
	})
	if err != nil {
		return err
	}
	return printJSON(out)
}

func attributeByName(name string) (caos.Attribute, bool) {
	for _, attr := range caos.AllAttributes {
		if name == string(attr) || name == caos.Label(string(attr)) ||
			name == lowercaseTail(string(attr)) {
			return attr, true
		}
	}
	return "", false
}

func lowercaseTail(id string) string {
	label := caos.Label(id)
	if label == "" {
		return ""
	}
	out := make([]rune, 0, len(label))
	for _, r := range label {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		out = append(out, r)
	}
	return string(out)
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
