package catalog

import (
	"embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/talgya/mini-pet/internal/pet"
)

//go:embed data/*.csv
var dataFS embed.FS

// Catalog holds every static table, keyed for lookup. Built once by Load;
// treated as read-only by every consumer.
type Catalog struct {
	Species         map[string]*Species
	TierGains       map[GrowthRate]map[pet.StatKind]TierGain
	Facilities      map[string]*Facility
	Items           map[string]*Item
	Locations       map[string]*Location
	Activities      map[string]*Activity
	DropTables      map[string][]DropEntry
	Routes          map[RouteKey]int
	WorldActivities map[string]*WorldActivity

	startLocationID string
}

// CSV row shapes. Multi-value columns use semicolon lists parsed after
// decode.

type speciesRow struct {
	ID         string `csv:"id"`
	Name       string `csv:"name"`
	GrowthRate string `csv:"growth_rate"`
	Strength   int    `csv:"base_strength"`
	Defense    int    `csv:"base_defense"`
	Agility    int    `csv:"base_agility"`
	Vitality   int    `csv:"base_vitality"`
}

type stageRow struct {
	SpeciesID      string `csv:"species_id"`
	Stage          string `csv:"stage"`
	AgeThreshold   uint64 `csv:"age_threshold_ticks"`
	SubstageLength uint64 `csv:"substage_length_ticks"`
	MaxCare        int    `csv:"max_care"`
	MaxCareLife    int    `csv:"max_care_life"`
	MaxEnergy      int    `csv:"max_energy"`
}

type tierGainRow struct {
	Tier string `csv:"tier"`
	Stat string `csv:"stat"`
	Min  int    `csv:"min_gain"`
	Max  int    `csv:"max_gain"`
}

type facilityRow struct {
	ID        string `csv:"id"`
	Name      string `csv:"name"`
	Primary   string `csv:"primary_stat"`
	Secondary string `csv:"secondary_stat"`
}

type sessionRow struct {
	FacilityID    string `csv:"facility_id"`
	SessionType   string `csv:"session_type"`
	DurationTicks int    `csv:"duration_ticks"`
	EnergyCost    int    `csv:"energy_cost"`
	MinStage      string `csv:"min_stage"`
	PrimaryGain   int    `csv:"primary_gain"`
	SecondaryGain int    `csv:"secondary_gain"`
}

type itemRow struct {
	ID    string `csv:"id"`
	Name  string `csv:"name"`
	Value int    `csv:"value"`
}

type locationRow struct {
	ID    string `csv:"id"`
	Name  string `csv:"name"`
	Start int    `csv:"start"`
}

type locationActivityRow struct {
	LocationID string `csv:"location_id"`
	ActivityID string `csv:"activity_id"`
	DropTables string `csv:"drop_tables"`
}

type activityRow struct {
	ID             string  `csv:"id"`
	Name           string  `csv:"name"`
	DurationTicks  int     `csv:"duration_ticks"`
	EnergyCost     int     `csv:"energy_cost"`
	CooldownTicks  uint64  `csv:"cooldown_ticks"`
	MinStage       string  `csv:"min_stage"`
	RequiredSkills string  `csv:"required_skills"` // "foraging:2;swimming:1"
	RequiredQuests string  `csv:"required_quests"` // "q1;q2"
	SkillFactors   string  `csv:"skill_factors"`   // "foraging:1.0;swimming:0.5"
}

type dropEntryRow struct {
	TableID        string  `csv:"table_id"`
	ItemID         string  `csv:"item_id"`
	MinRoll        float64 `csv:"min_roll"`
	Quantity       int     `csv:"quantity"`
	MinStage       string  `csv:"min_stage"`
	RequiredSkills string  `csv:"required_skills"`
	RequiredQuests string  `csv:"required_quests"`
}

type routeRow struct {
	From          string `csv:"from_id"`
	To            string `csv:"to_id"`
	DurationTicks int    `csv:"duration_ticks"`
}

type worldActivityRow struct {
	ID            string `csv:"id"`
	Name          string `csv:"name"`
	DurationTicks int    `csv:"duration_ticks"`
}

type worldRewardRow struct {
	ActivityID  string  `csv:"activity_id"`
	Kind        string  `csv:"kind"`
	Amount      int     `csv:"amount"`
	ItemID      string  `csv:"item_id"`
	SkillID     string  `csv:"skill_id"`
	Probability float64 `csv:"probability"`
}

func decodeTable[T any](name string) ([]T, error) {
	raw, err := dataFS.ReadFile("data/" + name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	var rows []T
	if err := gocsv.UnmarshalBytes(raw, &rows); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return rows, nil
}

// Load builds the catalog from the embedded tables.
func Load() (*Catalog, error) {
	c := &Catalog{
		Species:         map[string]*Species{},
		TierGains:       map[GrowthRate]map[pet.StatKind]TierGain{},
		Facilities:      map[string]*Facility{},
		Items:           map[string]*Item{},
		Locations:       map[string]*Location{},
		Activities:      map[string]*Activity{},
		DropTables:      map[string][]DropEntry{},
		Routes:          map[RouteKey]int{},
		WorldActivities: map[string]*WorldActivity{},
	}

	speciesRows, err := decodeTable[speciesRow]("species.csv")
	if err != nil {
		return nil, err
	}
	for _, r := range speciesRows {
		rate, err := parseGrowthRate(r.GrowthRate)
		if err != nil {
			return nil, fmt.Errorf("species %s: %w", r.ID, err)
		}
		c.Species[r.ID] = &Species{
			ID:         r.ID,
			Name:       r.Name,
			GrowthRate: rate,
			Baseline: pet.BattleStats{
				Strength: r.Strength,
				Defense:  r.Defense,
				Agility:  r.Agility,
				Vitality: r.Vitality,
			},
		}
	}

	stageRows, err := decodeTable[stageRow]("stages.csv")
	if err != nil {
		return nil, err
	}
	for _, r := range stageRows {
		sp, ok := c.Species[r.SpeciesID]
		if !ok {
			return nil, fmt.Errorf("stages.csv: unknown species %q", r.SpeciesID)
		}
		stage, err := parseStage(r.Stage)
		if err != nil {
			return nil, fmt.Errorf("stages.csv species %s: %w", r.SpeciesID, err)
		}
		sp.Stages[stage] = StageInfo{
			Stage:          stage,
			AgeThreshold:   r.AgeThreshold,
			SubstageLength: r.SubstageLength,
			MaxCare:        pet.ToMicro(r.MaxCare),
			MaxCareLife:    pet.ToMicro(r.MaxCareLife),
			MaxEnergy:      pet.ToMicro(r.MaxEnergy),
		}
	}

	tierRows, err := decodeTable[tierGainRow]("growth_tiers.csv")
	if err != nil {
		return nil, err
	}
	for _, r := range tierRows {
		rate, err := parseGrowthRate(r.Tier)
		if err != nil {
			return nil, fmt.Errorf("growth_tiers.csv: %w", err)
		}
		stat, err := parseStat(r.Stat)
		if err != nil {
			return nil, fmt.Errorf("growth_tiers.csv tier %s: %w", r.Tier, err)
		}
		if c.TierGains[rate] == nil {
			c.TierGains[rate] = map[pet.StatKind]TierGain{}
		}
		c.TierGains[rate][stat] = TierGain{Min: r.Min, Max: r.Max}
	}

	facilityRows, err := decodeTable[facilityRow]("facilities.csv")
	if err != nil {
		return nil, err
	}
	for _, r := range facilityRows {
		primary, err := parseStat(r.Primary)
		if err != nil {
			return nil, fmt.Errorf("facility %s: %w", r.ID, err)
		}
		secondary, err := parseStat(r.Secondary)
		if err != nil {
			return nil, fmt.Errorf("facility %s: %w", r.ID, err)
		}
		c.Facilities[r.ID] = &Facility{
			ID:        r.ID,
			Name:      r.Name,
			Primary:   primary,
			Secondary: secondary,
			Sessions:  map[string]*TrainingSession{},
		}
	}

	sessionRows, err := decodeTable[sessionRow]("sessions.csv")
	if err != nil {
		return nil, err
	}
	for _, r := range sessionRows {
		f, ok := c.Facilities[r.FacilityID]
		if !ok {
			return nil, fmt.Errorf("sessions.csv: unknown facility %q", r.FacilityID)
		}
		minStage, err := parseStage(r.MinStage)
		if err != nil {
			return nil, fmt.Errorf("sessions.csv %s/%s: %w", r.FacilityID, r.SessionType, err)
		}
		f.Sessions[r.SessionType] = &TrainingSession{
			FacilityID:    r.FacilityID,
			SessionType:   r.SessionType,
			DurationTicks: r.DurationTicks,
			EnergyCost:    r.EnergyCost,
			MinStage:      minStage,
			PrimaryGain:   r.PrimaryGain,
			SecondaryGain: r.SecondaryGain,
		}
	}

	itemRows, err := decodeTable[itemRow]("items.csv")
	if err != nil {
		return nil, err
	}
	for _, r := range itemRows {
		c.Items[r.ID] = &Item{ID: r.ID, Name: r.Name, Value: r.Value}
	}

	locationRows, err := decodeTable[locationRow]("locations.csv")
	if err != nil {
		return nil, err
	}
	for _, r := range locationRows {
		loc := &Location{ID: r.ID, Name: r.Name, Start: r.Start != 0, DropTables: map[string][]string{}}
		c.Locations[r.ID] = loc
		if loc.Start {
			c.startLocationID = loc.ID
		}
	}

	locActRows, err := decodeTable[locationActivityRow]("location_activities.csv")
	if err != nil {
		return nil, err
	}
	for _, r := range locActRows {
		loc, ok := c.Locations[r.LocationID]
		if !ok {
			return nil, fmt.Errorf("location_activities.csv: unknown location %q", r.LocationID)
		}
		loc.DropTables[r.ActivityID] = splitList(r.DropTables)
	}

	activityRows, err := decodeTable[activityRow]("activities.csv")
	if err != nil {
		return nil, err
	}
	for _, r := range activityRows {
		reqs, err := parseRequirements(r.MinStage, r.RequiredSkills, r.RequiredQuests)
		if err != nil {
			return nil, fmt.Errorf("activity %s: %w", r.ID, err)
		}
		factors, err := parseFactorMap(r.SkillFactors)
		if err != nil {
			return nil, fmt.Errorf("activity %s skill factors: %w", r.ID, err)
		}
		c.Activities[r.ID] = &Activity{
			ID:            r.ID,
			Name:          r.Name,
			DurationTicks: r.DurationTicks,
			EnergyCost:    r.EnergyCost,
			CooldownTicks: r.CooldownTicks,
			Requirements:  reqs,
			SkillFactors:  factors,
		}
	}

	dropRows, err := decodeTable[dropEntryRow]("drop_tables.csv")
	if err != nil {
		return nil, err
	}
	for _, r := range dropRows {
		reqs, err := parseRequirements(r.MinStage, r.RequiredSkills, r.RequiredQuests)
		if err != nil {
			return nil, fmt.Errorf("drop table %s item %s: %w", r.TableID, r.ItemID, err)
		}
		c.DropTables[r.TableID] = append(c.DropTables[r.TableID], DropEntry{
			TableID:      r.TableID,
			ItemID:       r.ItemID,
			MinRoll:      r.MinRoll,
			Quantity:     r.Quantity,
			Requirements: reqs,
		})
	}

	routeRows, err := decodeTable[routeRow]("routes.csv")
	if err != nil {
		return nil, err
	}
	for _, r := range routeRows {
		c.Routes[RouteKey{From: r.From, To: r.To}] = r.DurationTicks
	}

	waRows, err := decodeTable[worldActivityRow]("world_activities.csv")
	if err != nil {
		return nil, err
	}
	for _, r := range waRows {
		c.WorldActivities[r.ID] = &WorldActivity{ID: r.ID, Name: r.Name, DurationTicks: r.DurationTicks}
	}

	rewardRows, err := decodeTable[worldRewardRow]("world_rewards.csv")
	if err != nil {
		return nil, err
	}
	for _, r := range rewardRows {
		wa, ok := c.WorldActivities[r.ActivityID]
		if !ok {
			return nil, fmt.Errorf("world_rewards.csv: unknown activity %q", r.ActivityID)
		}
		wa.Rewards = append(wa.Rewards, RewardSpec{
			Kind:        r.Kind,
			Amount:      r.Amount,
			ItemID:      r.ItemID,
			SkillID:     r.SkillID,
			Probability: r.Probability,
		})
	}

	return c, nil
}

// StageFor derives stage and substage from a species' age thresholds.
func (c *Catalog) StageFor(speciesID string, ageTicks uint64) (pet.Stage, int) {
	sp, ok := c.Species[speciesID]
	if !ok {
		return pet.StageBaby, 1
	}
	stage := pet.StageBaby
	for s := pet.Stage(0); s < pet.NumStages; s++ {
		if ageTicks >= sp.Stages[s].AgeThreshold {
			stage = s
		}
	}
	info := sp.Stages[stage]
	substage := 1
	if info.SubstageLength > 0 {
		substage = int((ageTicks-info.AgeThreshold)/info.SubstageLength) + 1
	}
	return stage, substage
}

// MaxStatsFor returns the resource caps for a species at a stage.
func (c *Catalog) MaxStatsFor(speciesID string, stage pet.Stage) MaxStats {
	sp, ok := c.Species[speciesID]
	if !ok {
		return MaxStats{}
	}
	info := sp.Stages[stage]
	return MaxStats{Care: info.MaxCare, CareLife: info.MaxCareLife, Energy: info.MaxEnergy}
}

// BaseBattleStats computes base(stage) for a species: the baseline plus
// the floored-midpoint tier gain applied once per completed stage
// transition. Deterministic; no randomness in stat growth.
func (c *Catalog) BaseBattleStats(speciesID string, stage pet.Stage) pet.BattleStats {
	sp, ok := c.Species[speciesID]
	if !ok {
		return pet.BattleStats{}
	}
	base := sp.Baseline
	gains := c.TierGains[sp.GrowthRate]
	for s := pet.Stage(1); s <= stage; s++ {
		for stat, g := range gains {
			base = base.WithStat(stat, g.Midpoint())
		}
	}
	return base
}

// StartLocationID returns the world's starting location.
func (c *Catalog) StartLocationID() string {
	return c.startLocationID
}

// TravelTicks returns the travel duration between two locations, or false
// when no route exists.
func (c *Catalog) TravelTicks(from, to string) (int, bool) {
	d, ok := c.Routes[RouteKey{From: from, To: to}]
	return d, ok
}

func parseGrowthRate(s string) (GrowthRate, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return GrowthLow, nil
	case "medium":
		return GrowthMedium, nil
	case "high":
		return GrowthHigh, nil
	}
	return GrowthLow, fmt.Errorf("unknown growth rate %q", s)
}

func parseStage(s string) (pet.Stage, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "baby":
		return pet.StageBaby, nil
	case "juvenile":
		return pet.StageJuvenile, nil
	case "adult":
		return pet.StageAdult, nil
	}
	return pet.StageBaby, fmt.Errorf("unknown stage %q", s)
}

func parseStat(s string) (pet.StatKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strength":
		return pet.StatStrength, nil
	case "defense":
		return pet.StatDefense, nil
	case "agility":
		return pet.StatAgility, nil
	case "vitality":
		return pet.StatVitality, nil
	}
	return pet.StatStrength, fmt.Errorf("unknown stat %q", s)
}

func parseRequirements(minStage, skills, quests string) (Requirements, error) {
	stage, err := parseStage(minStage)
	if err != nil {
		return Requirements{}, err
	}
	reqs := Requirements{MinStage: stage, Quests: splitList(quests)}
	if skills != "" {
		reqs.Skills = map[string]int{}
		for _, pair := range splitList(skills) {
			id, val, ok := strings.Cut(pair, ":")
			if !ok {
				return Requirements{}, fmt.Errorf("malformed skill requirement %q", pair)
			}
			level, err := strconv.Atoi(val)
			if err != nil {
				return Requirements{}, fmt.Errorf("skill requirement %q: %w", pair, err)
			}
			reqs.Skills[id] = level
		}
	}
	return reqs, nil
}

func parseFactorMap(s string) (map[string]float64, error) {
	if s == "" {
		return nil, nil
	}
	factors := map[string]float64{}
	for _, pair := range splitList(s) {
		id, val, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("malformed factor %q", pair)
		}
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, fmt.Errorf("factor %q: %w", pair, err)
		}
		factors[id] = f
	}
	return factors, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
