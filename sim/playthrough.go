package sim

import (
	"bytes"
	"errors"
	"fmt"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
)

// InputVersion is the version of the byte representation of a Playthrough.
// If serializing a Playthrough starts producing different bytes, it must
// change. Old recordings can still be translated by loading them with the
// old structure.
const InputVersion = 1

// SimulationVersion identifies the rules of the simulation. A Playthrough
// can only be replayed by a Session with the SimulationVersion it was
// recorded with; any change to the physics, merges, scoring or spawning must
// bump it.
const SimulationVersion = 2

var ErrIncompatiblePlaythrough = errors.New("incompatible playthrough")

// Playthrough is all the input given to a Session during one game, plus
// everything the Session was created from. Replaying the History on a new
// Session built with NewSessionFromPlaythrough produces the same game.
type Playthrough struct {
	InputVersion      int64
	SimulationVersion int64
	ReleaseVersion    int64
	Level
	Config
	// Catalog is empty for games played with the default catalog.
	Catalog Catalog
	Id      uuid.UUID
	Seed    int64
	History []PlayerInput
}

// NewPlaythrough prepares the recording of a game. The seed of cfg is
// overwritten by seed.
func NewPlaythrough(cfg Config, level Level, releaseVersion int64,
	seed int64) (p Playthrough) {
	p.InputVersion = InputVersion
	p.SimulationVersion = SimulationVersion
	p.ReleaseVersion = releaseVersion
	p.Level = level
	p.Config = cfg
	p.Config.Seed = seed
	p.Id = uuid.New()
	p.Seed = seed
	return
}

func (p *Playthrough) Serialize() []byte {
	buf := new(bytes.Buffer)
	Serialize(buf, p.InputVersion)
	Serialize(buf, p.SimulationVersion)
	Serialize(buf, p.ReleaseVersion)
	SerializeSlice(buf, p.Level.PiecesParams)
	Serialize(buf, p.Config)
	var catalog []byte
	if p.Catalog.Len() > 0 {
		var err error
		catalog, err = yaml.Marshal(p.Catalog)
		if err != nil {
			panic(err)
		}
	}
	SerializeSlice(buf, catalog)
	Serialize(buf, p.Id)
	Serialize(buf, p.Seed)
	SerializeSlice(buf, p.History)
	return Zip(buf.Bytes())
}

func (p *Playthrough) Clone() *Playthrough {
	clone := *p
	clone.PiecesParams = slices.Clone(p.PiecesParams)
	clone.Catalog.Ranks = slices.Clone(p.Catalog.Ranks)
	clone.Catalog.SpawnWeights = slices.Clone(p.Catalog.SpawnWeights)
	clone.History = slices.Clone(p.History)
	return &clone
}

func DeserializePlaythrough(data []byte) (p Playthrough, err error) {
	raw, err := Unzip(data)
	if err != nil {
		return Playthrough{}, err
	}
	d := decoder{r: bytes.NewReader(raw)}
	d.read(&p.InputVersion)
	if d.err == nil && p.InputVersion != InputVersion {
		return Playthrough{}, fmt.Errorf("%w: we are at InputVersion %d and "+
			"the playthrough was recorded with InputVersion %d",
			ErrIncompatiblePlaythrough, InputVersion, p.InputVersion)
	}
	d.read(&p.SimulationVersion)
	d.read(&p.ReleaseVersion)
	readSlice(&d, &p.PiecesParams)
	d.read(&p.Config)
	var catalog []byte
	readSlice(&d, &catalog)
	d.read(&p.Id)
	d.read(&p.Seed)
	readSlice(&d, &p.History)
	if d.err != nil {
		return Playthrough{}, d.err
	}
	if len(catalog) > 0 {
		if p.Catalog, err = LoadCatalogYAML(catalog); err != nil {
			return Playthrough{}, err
		}
	}
	return p, nil
}

// NewSessionFromPlaythrough creates the Session the playthrough was
// recorded on, before any input was applied.
func NewSessionFromPlaythrough(p *Playthrough) (*Session, error) {
	if p.SimulationVersion != SimulationVersion {
		return nil, fmt.Errorf("%w: we are at SimulationVersion %d and the "+
			"playthrough was recorded with SimulationVersion %d",
			ErrIncompatiblePlaythrough, SimulationVersion, p.SimulationVersion)
	}
	cfg := p.Config
	cfg.Seed = p.Seed
	catalog := DefaultCatalog()
	if p.Catalog.Len() > 0 {
		catalog = &p.Catalog
	}
	return NewSessionWithCatalog(cfg, catalog, p.Level)
}
