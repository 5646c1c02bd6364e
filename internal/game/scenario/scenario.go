// Package scenario builds canonical demo event journals for seeding and
// end-to-end testing.
package scenario

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/louisbranch/hexfall/internal/game/domain"
	"github.com/louisbranch/hexfall/internal/game/event"
)

// Demo returns a complete, ordered journal for a two-lance skirmish: setup,
// one full turn of initiative, movement, weapon fire with damage and heat,
// and turn cleanup. Sequence numbers are assigned from 1; appending the
// events to a fresh store reproduces them.
//
// When gameID is empty a random one is generated.
func Demo(gameID string) ([]event.Event, error) {
	if gameID == "" {
		gameID = uuid.NewString()
	}

	b := &builder{gameID: gameID, at: time.Date(2026, 3, 7, 18, 0, 0, 0, time.UTC)}

	b.append(event.TypeGameCreated, 0, "", event.GameCreatedPayload{
		Units: []event.UnitDescriptor{
			demoUnit("hammer-1", "Hammer One", domain.SidePlayer),
			demoUnit("hammer-2", "Hammer Two", domain.SidePlayer),
			demoUnit("anvil-1", "Anvil One", domain.SideOpponent),
			demoUnit("anvil-2", "Anvil Two", domain.SideOpponent),
		},
		MapWidth:  15,
		MapHeight: 17,
	})
	b.append(event.TypeGameStarted, 0, "", event.GameStartedPayload{FirstMover: "player"})
	b.append(event.TypeTurnStarted, 1, "", event.TurnStartedPayload{Turn: 1})
	b.append(event.TypeInitiativeRolled, 1, "", event.InitiativeRolledPayload{
		Winner:       "player",
		FirstMover:   "player",
		PlayerRoll:   9,
		OpponentRoll: 5,
	})

	b.append(event.TypePhaseChanged, 1, "", event.PhaseChangedPayload{FromPhase: "initiative", ToPhase: "movement"})
	moves := []event.MovementDeclaredPayload{
		{UnitID: "hammer-1", To: event.Hex{Q: 3, R: 4}, Facing: "south", MovementType: "walk", HexesMoved: 4},
		{UnitID: "anvil-1", To: event.Hex{Q: 4, R: 12}, Facing: "north", MovementType: "walk", HexesMoved: 4},
		{UnitID: "hammer-2", To: event.Hex{Q: 6, R: 5}, Facing: "southeast", MovementType: "run", HexesMoved: 6, HeatGenerated: 2},
		{UnitID: "anvil-2", To: event.Hex{Q: 7, R: 11}, Facing: "northwest", MovementType: "jump", HexesMoved: 5, HeatGenerated: 5},
	}
	for _, move := range moves {
		b.append(event.TypeMovementDeclared, 1, move.UnitID, move)
		b.append(event.TypeMovementLocked, 1, move.UnitID, event.MovementLockedPayload{UnitID: move.UnitID})
	}

	b.append(event.TypePhaseChanged, 1, "", event.PhaseChangedPayload{FromPhase: "movement", ToPhase: "weapon_attack"})
	attacks := []event.AttackDeclaredPayload{
		{AttackerID: "hammer-1", TargetID: "anvil-1", WeaponIDs: []string{"medium_laser_ra", "ac10_lt"}},
		{AttackerID: "hammer-2", TargetID: "anvil-2", WeaponIDs: []string{"ppc_rt"}},
		{AttackerID: "anvil-1", TargetID: "hammer-1", WeaponIDs: []string{"large_laser_ra"}},
		{AttackerID: "anvil-2", TargetID: "hammer-2", WeaponIDs: []string{"srm6_ct"}},
	}
	for _, attack := range attacks {
		b.append(event.TypeAttackDeclared, 1, attack.AttackerID, attack)
		b.append(event.TypeAttackLocked, 1, attack.AttackerID, event.AttackLockedPayload{AttackerID: attack.AttackerID})
	}

	b.append(event.TypeAmmoConsumed, 1, "hammer-1", event.AmmoConsumedPayload{
		UnitID: "hammer-1", BinID: "ac10_bin_lt", RoundsUsed: 1, RoundsRemaining: 9,
	})
	b.append(event.TypeDamageApplied, 1, "anvil-1", event.DamageAppliedPayload{
		TargetID: "anvil-1", Location: domain.LocationCenterTorso,
		Damage: 10, ArmorRemaining: 8, StructureRemaining: 14,
	})
	b.append(event.TypeDamageApplied, 1, "hammer-1", event.DamageAppliedPayload{
		TargetID: "hammer-1", Location: domain.LocationLeftTorso,
		Damage: 8, ArmorRemaining: 4, StructureRemaining: 12,
	})
	b.append(event.TypeHeatGenerated, 1, "hammer-1", event.HeatUpdatedPayload{
		UnitID: "hammer-1", Amount: 5, NewTotal: 5, Source: "weapons",
	})
	b.append(event.TypeHeatGenerated, 1, "anvil-2", event.HeatUpdatedPayload{
		UnitID: "anvil-2", Amount: 4, NewTotal: 9, Source: "weapons",
	})

	b.append(event.TypePhaseChanged, 1, "", event.PhaseChangedPayload{FromPhase: "weapon_attack", ToPhase: "physical_attack"})
	b.append(event.TypePhaseChanged, 1, "", event.PhaseChangedPayload{FromPhase: "physical_attack", ToPhase: "heat"})
	b.append(event.TypeHeatDissipated, 1, "hammer-1", event.HeatUpdatedPayload{
		UnitID: "hammer-1", Amount: 4, NewTotal: 1, Source: "heat_sinks",
	})
	b.append(event.TypeHeatDissipated, 1, "anvil-2", event.HeatUpdatedPayload{
		UnitID: "anvil-2", Amount: 6, NewTotal: 3, Source: "heat_sinks",
	})
	b.append(event.TypePhaseChanged, 1, "", event.PhaseChangedPayload{FromPhase: "heat", ToPhase: "end"})
	b.append(event.TypeTurnEnded, 1, "", event.TurnEndedPayload{Turn: 1})

	if b.err != nil {
		return nil, b.err
	}
	return b.events, nil
}

func demoUnit(id, name string, side domain.Side) event.UnitDescriptor {
	return event.UnitDescriptor{
		UnitID: id,
		Name:   name,
		Side:   side.String(),
		Armor: map[string]int{
			domain.LocationHead:            9,
			domain.LocationCenterTorso:     18,
			domain.LocationCenterTorsoRear: 6,
			domain.LocationLeftTorso:       12,
			domain.LocationLeftTorsoRear:   5,
			domain.LocationRightTorso:      12,
			domain.LocationRightTorsoRear:  5,
			domain.LocationLeftArm:         10,
			domain.LocationRightArm:        10,
			domain.LocationLeftLeg:         14,
			domain.LocationRightLeg:        14,
		},
		Structure: map[string]int{
			domain.LocationHead:        3,
			domain.LocationCenterTorso: 14,
			domain.LocationLeftTorso:   12,
			domain.LocationRightTorso:  12,
			domain.LocationLeftArm:     8,
			domain.LocationRightArm:    8,
			domain.LocationLeftLeg:     10,
			domain.LocationRightLeg:    10,
		},
		Ammo: map[string]int{
			"ac10_bin_lt": 10,
			"srm6_bin_ct": 15,
		},
	}
}

type builder struct {
	gameID string
	seq    uint64
	at     time.Time
	events []event.Event
	err    error
}

func (b *builder) append(evtType event.Type, turn int, entityID string, payload any) {
	if b.err != nil {
		return
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		b.err = fmt.Errorf("marshal %s payload: %w", evtType, err)
		return
	}
	b.seq++
	b.at = b.at.Add(time.Second)
	b.events = append(b.events, event.Event{
		GameID:      b.gameID,
		Seq:         b.seq,
		Turn:        turn,
		Timestamp:   b.at,
		Type:        evtType,
		EntityID:    entityID,
		PayloadJSON: raw,
	})
}
