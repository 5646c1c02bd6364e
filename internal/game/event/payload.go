package event

// UnitDescriptor describes a unit entering play via game.created.
type UnitDescriptor struct {
	UnitID    string         `json:"unit_id"`
	Name      string         `json:"name,omitempty"`
	Side      string         `json:"side"`
	Armor     map[string]int `json:"armor"`
	Structure map[string]int `json:"structure"`
	Ammo      map[string]int `json:"ammo,omitempty"`
}

// GameCreatedPayload captures the payload for game.created events.
type GameCreatedPayload struct {
	Units     []UnitDescriptor `json:"units"`
	MapWidth  int              `json:"map_width,omitempty"`
	MapHeight int              `json:"map_height,omitempty"`
}

// GameStartedPayload captures the payload for game.started events.
type GameStartedPayload struct {
	FirstMover string `json:"first_mover,omitempty"`
}

// GameEndedPayload captures the payload for game.ended events.
type GameEndedPayload struct {
	Winner string `json:"winner,omitempty"`
	Reason string `json:"reason"`
}

// TurnStartedPayload captures the payload for turn.started events.
type TurnStartedPayload struct {
	Turn int `json:"turn"`
}

// TurnEndedPayload captures the payload for turn.ended events.
type TurnEndedPayload struct {
	Turn int `json:"turn"`
}

// PhaseChangedPayload captures the payload for phase.changed events.
type PhaseChangedPayload struct {
	FromPhase string `json:"from_phase,omitempty"`
	ToPhase   string `json:"to_phase"`
}

// InitiativeRolledPayload captures the payload for initiative.rolled events.
type InitiativeRolledPayload struct {
	Winner       string `json:"winner"`
	FirstMover   string `json:"first_mover"`
	PlayerRoll   int    `json:"player_roll,omitempty"`
	OpponentRoll int    `json:"opponent_roll,omitempty"`
}

// InitiativeOrderSetPayload captures the payload for initiative.order_set events.
type InitiativeOrderSetPayload struct {
	Order []string `json:"order"`
}

// MovementDeclaredPayload captures the payload for movement.declared events.
type MovementDeclaredPayload struct {
	UnitID        string `json:"unit_id"`
	To            Hex    `json:"to"`
	Facing        string `json:"facing"`
	MovementType  string `json:"movement_type"`
	HexesMoved    int    `json:"hexes_moved"`
	HeatGenerated int    `json:"heat_generated,omitempty"`
}

// MovementLockedPayload captures the payload for movement.locked events.
type MovementLockedPayload struct {
	UnitID string `json:"unit_id"`
}

// FacingChangedPayload captures the payload for facing.changed events.
type FacingChangedPayload struct {
	UnitID    string `json:"unit_id"`
	NewFacing string `json:"new_facing"`
}

// AttackDeclaredPayload captures the payload for attack.declared events.
type AttackDeclaredPayload struct {
	AttackerID string   `json:"attacker_id"`
	TargetID   string   `json:"target_id"`
	WeaponIDs  []string `json:"weapon_ids,omitempty"`
}

// AttackLockedPayload captures the payload for attack.locked events.
type AttackLockedPayload struct {
	AttackerID string `json:"attacker_id"`
}

// AttackResolvedPayload captures the payload for attack.resolved events.
type AttackResolvedPayload struct {
	AttackerID string `json:"attacker_id"`
	TargetID   string `json:"target_id"`
	WeaponID   string `json:"weapon_id,omitempty"`
	Hit        bool   `json:"hit"`
	Roll       int    `json:"roll,omitempty"`
	Target     int    `json:"target,omitempty"`
}

// DamageAppliedPayload captures the payload for damage.applied events.
type DamageAppliedPayload struct {
	TargetID           string   `json:"target_id"`
	Location           string   `json:"location"`
	Damage             int      `json:"damage"`
	ArmorRemaining     int      `json:"armor_remaining"`
	StructureRemaining int      `json:"structure_remaining"`
	LocationDestroyed  bool     `json:"location_destroyed,omitempty"`
	CriticalHits       []string `json:"critical_hits,omitempty"`
}

// HeatUpdatedPayload captures the payload for heat.generated and
// heat.dissipated events. NewTotal is authoritative; Amount is advisory.
type HeatUpdatedPayload struct {
	UnitID   string `json:"unit_id"`
	Amount   int    `json:"amount,omitempty"`
	NewTotal int    `json:"new_total"`
	Source   string `json:"source,omitempty"`
}

// HeatEffectAppliedPayload captures the payload for heat.effect_applied events.
type HeatEffectAppliedPayload struct {
	UnitID string `json:"unit_id"`
	Effect string `json:"effect"`
}

// ShutdownCheckPayload captures the payload for shutdown.check events.
type ShutdownCheckPayload struct {
	UnitID           string `json:"unit_id"`
	TargetNumber     int    `json:"target_number,omitempty"`
	Roll             int    `json:"roll,omitempty"`
	ShutdownOccurred bool   `json:"shutdown_occurred"`
}

// StartupAttemptPayload captures the payload for startup.attempt events.
type StartupAttemptPayload struct {
	UnitID       string `json:"unit_id"`
	TargetNumber int    `json:"target_number,omitempty"`
	Roll         int    `json:"roll,omitempty"`
	Success      bool   `json:"success"`
}

// PilotHitPayload captures the payload for pilot.hit events.
type PilotHitPayload struct {
	UnitID                     string `json:"unit_id"`
	Wounds                     int    `json:"wounds"`
	TotalWounds                int    `json:"total_wounds"`
	ConsciousnessCheckRequired bool   `json:"consciousness_check_required,omitempty"`
	RemainedConscious          bool   `json:"remained_conscious,omitempty"`
	Source                     string `json:"source,omitempty"`
}

// UnitDestroyedPayload captures the payload for unit.destroyed events.
type UnitDestroyedPayload struct {
	UnitID string `json:"unit_id"`
	Reason string `json:"reason,omitempty"`
}

// UnitFellPayload captures the payload for unit.fell events.
type UnitFellPayload struct {
	UnitID    string `json:"unit_id"`
	NewFacing string `json:"new_facing,omitempty"`
	Damage    int    `json:"damage,omitempty"`
}

// CriticalHitResolvedPayload captures the payload for critical.resolved events.
type CriticalHitResolvedPayload struct {
	UnitID        string `json:"unit_id"`
	Location      string `json:"location,omitempty"`
	ComponentType string `json:"component_type"`
	ComponentName string `json:"component_name,omitempty"`
	Slot          int    `json:"slot,omitempty"`
}

// CriticalHitPayload captures the payload for legacy critical.hit events.
type CriticalHitPayload struct {
	UnitID   string `json:"unit_id"`
	Location string `json:"location"`
	Slots    []int  `json:"slots,omitempty"`
}

// PSRTriggeredPayload captures the payload for psr.triggered events.
type PSRTriggeredPayload struct {
	UnitID             string `json:"unit_id"`
	Reason             string `json:"reason"`
	AdditionalModifier int    `json:"additional_modifier,omitempty"`
	TriggerSource      string `json:"trigger_source,omitempty"`
}

// PSRResolvedPayload captures the payload for psr.resolved events.
type PSRResolvedPayload struct {
	UnitID       string `json:"unit_id"`
	Reason       string `json:"reason"`
	Success      bool   `json:"success,omitempty"`
	Roll         int    `json:"roll,omitempty"`
	TargetNumber int    `json:"target_number,omitempty"`
}

// PhysicalAttackDeclaredPayload captures the payload for physical.declared events.
type PhysicalAttackDeclaredPayload struct {
	AttackerID string `json:"attacker_id"`
	TargetID   string `json:"target_id"`
	AttackType string `json:"attack_type,omitempty"`
}

// PhysicalAttackResolvedPayload captures the payload for physical.resolved events.
type PhysicalAttackResolvedPayload struct {
	AttackerID string `json:"attacker_id"`
	TargetID   string `json:"target_id"`
	AttackType string `json:"attack_type,omitempty"`
	Hit        bool   `json:"hit"`
	Damage     int    `json:"damage,omitempty"`
	Location   string `json:"location,omitempty"`
}

// AmmoConsumedPayload captures the payload for ammo.consumed events.
type AmmoConsumedPayload struct {
	UnitID          string `json:"unit_id"`
	BinID           string `json:"bin_id"`
	RoundsUsed      int    `json:"rounds_used,omitempty"`
	RoundsRemaining int    `json:"rounds_remaining"`
}

// AmmoExplosionPayload captures the payload for ammo.explosion events.
type AmmoExplosionPayload struct {
	UnitID string `json:"unit_id"`
	BinID  string `json:"bin_id"`
	Damage int    `json:"damage,omitempty"`
}
