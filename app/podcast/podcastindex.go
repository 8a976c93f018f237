package podcast

import "time"

// Locked tells other platforms whether they may import the feed.
type Locked struct {
	Owner  string `json:"owner"`
	Locked bool   `json:"locked"`
}

type LockedBuilder struct {
	owner  string
	locked *bool
}

func NewLockedBuilder() *LockedBuilder {
	return &LockedBuilder{}
}

func (b *LockedBuilder) Owner(owner string) *LockedBuilder {
	b.owner = owner
	return b
}

func (b *LockedBuilder) Locked(locked bool) *LockedBuilder {
	b.locked = &locked
	return b
}

func (b *LockedBuilder) HasEnoughDataToBuild() bool {
	return b != nil && b.owner != "" && b.locked != nil
}

func (b *LockedBuilder) Build() (Locked, bool) {
	if !b.HasEnoughDataToBuild() {
		return Locked{}, false
	}
	return Locked{Owner: b.owner, Locked: *b.locked}, true
}

func (b *LockedBuilder) ApplyFrom(locked *Locked) *LockedBuilder {
	if locked == nil {
		return b
	}
	return b.Owner(locked.Owner).Locked(locked.Locked)
}

// Funding points listeners to a place where they can support the podcast.
type Funding struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

type FundingBuilder struct {
	url     string
	message string
}

func NewFundingBuilder() *FundingBuilder {
	return &FundingBuilder{}
}

func (b *FundingBuilder) URL(url string) *FundingBuilder {
	b.url = url
	return b
}

func (b *FundingBuilder) Message(message string) *FundingBuilder {
	b.message = message
	return b
}

func (b *FundingBuilder) HasEnoughDataToBuild() bool {
	return b != nil && b.url != "" && b.message != ""
}

func (b *FundingBuilder) Build() (Funding, bool) {
	if !b.HasEnoughDataToBuild() {
		return Funding{}, false
	}
	return Funding{URL: b.url, Message: b.message}, true
}

func (b *FundingBuilder) ApplyFrom(funding *Funding) *FundingBuilder {
	if funding == nil {
		return b
	}
	return b.URL(funding.URL).Message(funding.Message)
}

// PodcastPodcastindex is the Podcastindex namespace data of a channel.
type PodcastPodcastindex struct {
	Locked  *Locked   `json:"locked,omitempty"`
	Funding []Funding `json:"funding,omitempty"`
}

type PodcastPodcastindexBuilder struct {
	locked  *LockedBuilder
	funding []*FundingBuilder
}

func NewPodcastPodcastindexBuilder() *PodcastPodcastindexBuilder {
	return &PodcastPodcastindexBuilder{}
}

func (b *PodcastPodcastindexBuilder) LockedBuilder(locked *LockedBuilder) *PodcastPodcastindexBuilder {
	b.locked = locked
	return b
}

func (b *PodcastPodcastindexBuilder) AddFundingBuilder(funding *FundingBuilder) *PodcastPodcastindexBuilder {
	b.funding = append(b.funding, funding)
	return b
}

func (b *PodcastPodcastindexBuilder) AddAllFundingBuilders(funding []*FundingBuilder) *PodcastPodcastindexBuilder {
	b.funding = append(b.funding, funding...)
	return b
}

func (b *PodcastPodcastindexBuilder) HasEnoughDataToBuild() bool {
	if b == nil {
		return false
	}
	return b.locked.HasEnoughDataToBuild() || anyReady[Funding](b.funding)
}

func (b *PodcastPodcastindexBuilder) Build() (PodcastPodcastindex, bool) {
	if !b.HasEnoughDataToBuild() {
		return PodcastPodcastindex{}, false
	}
	return PodcastPodcastindex{
		Locked:  buildOptional[Locked](b.locked),
		Funding: buildAll[Funding](b.funding),
	}, true
}

func (b *PodcastPodcastindexBuilder) ApplyFrom(podcastindex *PodcastPodcastindex) *PodcastPodcastindexBuilder {
	if podcastindex == nil {
		return b
	}
	b.LockedBuilder(NewLockedBuilder().ApplyFrom(podcastindex.Locked))
	for i := range podcastindex.Funding {
		b.AddFundingBuilder(NewFundingBuilder().ApplyFrom(&podcastindex.Funding[i]))
	}
	return b
}

// Chapters links to an external chapters file.
type Chapters struct {
	URL  string `json:"url"`
	Type string `json:"type"`
}

type ChaptersBuilder struct {
	url          string
	chaptersType string
}

func NewChaptersBuilder() *ChaptersBuilder {
	return &ChaptersBuilder{}
}

func (b *ChaptersBuilder) URL(url string) *ChaptersBuilder {
	b.url = url
	return b
}

func (b *ChaptersBuilder) Type(chaptersType string) *ChaptersBuilder {
	b.chaptersType = chaptersType
	return b
}

func (b *ChaptersBuilder) HasEnoughDataToBuild() bool {
	return b != nil && b.url != "" && b.chaptersType != ""
}

func (b *ChaptersBuilder) Build() (Chapters, bool) {
	if !b.HasEnoughDataToBuild() {
		return Chapters{}, false
	}
	return Chapters{URL: b.url, Type: b.chaptersType}, true
}

func (b *ChaptersBuilder) ApplyFrom(chapters *Chapters) *ChaptersBuilder {
	if chapters == nil {
		return b
	}
	return b.URL(chapters.URL).Type(chapters.Type)
}

// Soundbite marks a section of the enclosure suitable for previews.
type Soundbite struct {
	StartTime time.Duration `json:"startTime"`
	Duration  time.Duration `json:"duration"`
	Title     string        `json:"title,omitempty"`
}

type SoundbiteBuilder struct {
	startTime *time.Duration
	duration  *time.Duration
	title     string
}

func NewSoundbiteBuilder() *SoundbiteBuilder {
	return &SoundbiteBuilder{}
}

func (b *SoundbiteBuilder) StartTime(startTime time.Duration) *SoundbiteBuilder {
	b.startTime = &startTime
	return b
}

func (b *SoundbiteBuilder) Duration(duration time.Duration) *SoundbiteBuilder {
	b.duration = &duration
	return b
}

func (b *SoundbiteBuilder) Title(title string) *SoundbiteBuilder {
	b.title = title
	return b
}

// HasEnoughDataToBuild requires a non-negative start time and a strictly positive duration.
func (b *SoundbiteBuilder) HasEnoughDataToBuild() bool {
	return b != nil &&
		b.startTime != nil && *b.startTime >= 0 &&
		b.duration != nil && *b.duration > 0
}

func (b *SoundbiteBuilder) Build() (Soundbite, bool) {
	if !b.HasEnoughDataToBuild() {
		return Soundbite{}, false
	}
	return Soundbite{StartTime: *b.startTime, Duration: *b.duration, Title: b.title}, true
}

func (b *SoundbiteBuilder) ApplyFrom(soundbite *Soundbite) *SoundbiteBuilder {
	if soundbite == nil {
		return b
	}
	return b.StartTime(soundbite.StartTime).Duration(soundbite.Duration).Title(soundbite.Title)
}

// Transcript links to a transcript or closed captions file.
type Transcript struct {
	URL      string `json:"url"`
	Type     string `json:"type"`
	Language string `json:"language,omitempty"`
	Rel      string `json:"rel,omitempty"`
}

type TranscriptBuilder struct {
	url            string
	transcriptType string
	language       string
	rel            string
}

func NewTranscriptBuilder() *TranscriptBuilder {
	return &TranscriptBuilder{}
}

func (b *TranscriptBuilder) URL(url string) *TranscriptBuilder {
	b.url = url
	return b
}

func (b *TranscriptBuilder) Type(transcriptType string) *TranscriptBuilder {
	b.transcriptType = transcriptType
	return b
}

func (b *TranscriptBuilder) Language(language string) *TranscriptBuilder {
	b.language = language
	return b
}

func (b *TranscriptBuilder) Rel(rel string) *TranscriptBuilder {
	b.rel = rel
	return b
}

func (b *TranscriptBuilder) HasEnoughDataToBuild() bool {
	return b != nil && b.url != "" && b.transcriptType != ""
}

func (b *TranscriptBuilder) Build() (Transcript, bool) {
	if !b.HasEnoughDataToBuild() {
		return Transcript{}, false
	}
	return Transcript{URL: b.url, Type: b.transcriptType, Language: b.language, Rel: b.rel}, true
}

func (b *TranscriptBuilder) ApplyFrom(transcript *Transcript) *TranscriptBuilder {
	if transcript == nil {
		return b
	}
	return b.URL(transcript.URL).
		Type(transcript.Type).
		Language(transcript.Language).
		Rel(transcript.Rel)
}

// EpisodePodcastindex is the Podcastindex namespace data of an item.
type EpisodePodcastindex struct {
	Chapters    *Chapters    `json:"chapters,omitempty"`
	Soundbites  []Soundbite  `json:"soundbites,omitempty"`
	Transcripts []Transcript `json:"transcripts,omitempty"`
}

type EpisodePodcastindexBuilder struct {
	chapters    *ChaptersBuilder
	soundbites  []*SoundbiteBuilder
	transcripts []*TranscriptBuilder
}

func NewEpisodePodcastindexBuilder() *EpisodePodcastindexBuilder {
	return &EpisodePodcastindexBuilder{}
}

func (b *EpisodePodcastindexBuilder) ChaptersBuilder(chapters *ChaptersBuilder) *EpisodePodcastindexBuilder {
	b.chapters = chapters
	return b
}

func (b *EpisodePodcastindexBuilder) AddSoundbiteBuilder(soundbite *SoundbiteBuilder) *EpisodePodcastindexBuilder {
	b.soundbites = append(b.soundbites, soundbite)
	return b
}

func (b *EpisodePodcastindexBuilder) AddAllSoundbiteBuilders(soundbites []*SoundbiteBuilder) *EpisodePodcastindexBuilder {
	b.soundbites = append(b.soundbites, soundbites...)
	return b
}

func (b *EpisodePodcastindexBuilder) AddTranscriptBuilder(transcript *TranscriptBuilder) *EpisodePodcastindexBuilder {
	b.transcripts = append(b.transcripts, transcript)
	return b
}

func (b *EpisodePodcastindexBuilder) AddAllTranscriptBuilders(transcripts []*TranscriptBuilder) *EpisodePodcastindexBuilder {
	b.transcripts = append(b.transcripts, transcripts...)
	return b
}

func (b *EpisodePodcastindexBuilder) HasEnoughDataToBuild() bool {
	if b == nil {
		return false
	}
	return b.chapters.HasEnoughDataToBuild() ||
		anyReady[Soundbite](b.soundbites) ||
		anyReady[Transcript](b.transcripts)
}

func (b *EpisodePodcastindexBuilder) Build() (EpisodePodcastindex, bool) {
	if !b.HasEnoughDataToBuild() {
		return EpisodePodcastindex{}, false
	}
	return EpisodePodcastindex{
		Chapters:    buildOptional[Chapters](b.chapters),
		Soundbites:  buildAll[Soundbite](b.soundbites),
		Transcripts: buildAll[Transcript](b.transcripts),
	}, true
}

func (b *EpisodePodcastindexBuilder) ApplyFrom(podcastindex *EpisodePodcastindex) *EpisodePodcastindexBuilder {
	if podcastindex == nil {
		return b
	}
	b.ChaptersBuilder(NewChaptersBuilder().ApplyFrom(podcastindex.Chapters))
	for i := range podcastindex.Soundbites {
		b.AddSoundbiteBuilder(NewSoundbiteBuilder().ApplyFrom(&podcastindex.Soundbites[i]))
	}
	for i := range podcastindex.Transcripts {
		b.AddTranscriptBuilder(NewTranscriptBuilder().ApplyFrom(&podcastindex.Transcripts[i]))
	}
	return b
}
