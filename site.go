package artext

import "strings"

// SiteID identifies a publishing platform with its own extraction heuristics.
type SiteID string

// Known publishing platforms.
const (
	SiteUnknown SiteID = "unknown"
	SiteWishket SiteID = "wishket"
	SiteBrunch  SiteID = "brunch"
	SiteMedium  SiteID = "medium"
	SiteVelog   SiteID = "velog"
)

// SiteProfile holds the per-site selectors and boilerplate used by the
// extraction engine. Profiles are configuration data and are never mutated
// after the table is built.
type SiteProfile struct {
	ID SiteID `yaml:"id" json:"id"`

	// Pattern is matched as a substring of the page URL.
	Pattern string `yaml:"pattern" json:"pattern"`

	// TitleSelectors are tried in order before the generic title selectors.
	TitleSelectors []string `yaml:"title" json:"title"`

	// ContainerSelectors are tried in order before the generic containers.
	ContainerSelectors []string `yaml:"containers" json:"containers"`

	// Phrases are removed from the winning text after the global phrases.
	// They must not overlap the global phrases: what a global phrase leaves
	// behind is listed here instead.
	Phrases []string `yaml:"phrases" json:"phrases"`

	// ReadySelector is what a renderer waits for before reading the page.
	ReadySelector string `yaml:"ready" json:"ready"`

	// MinBlockLength overrides the generic block threshold of the
	// content assembler. Zero means the engine default.
	MinBlockLength int `yaml:"minBlockLength" json:"minBlockLength"`

	// Captions tags figure captions as "[image] <caption>" fragments.
	Captions bool `yaml:"captions" json:"captions"`
}

// Profiles is an ordered, immutable table of site profiles.
type Profiles struct {
	list    []SiteProfile
	unknown SiteProfile
}

// NewProfiles builds a table from the given profiles. Declaration order is
// the classification order.
func NewProfiles(profiles ...SiteProfile) *Profiles {
	list := make([]SiteProfile, len(profiles))
	for i, p := range profiles {
		list[i] = p.clone()
	}
	return &Profiles{
		list: list,
		unknown: SiteProfile{
			ID:            SiteUnknown,
			ReadySelector: "article, main, div.content",
		},
	}
}

// Classify returns the ID of the first profile whose pattern occurs in url,
// or SiteUnknown when none does.
func (p *Profiles) Classify(url string) SiteID {
	for _, profile := range p.list {
		if profile.Pattern != "" && strings.Contains(url, profile.Pattern) {
			return profile.ID
		}
	}
	return SiteUnknown
}

// Lookup returns the profile for id. Unknown ids get an empty profile with
// the generic readiness selector, never nil.
func (p *Profiles) Lookup(id SiteID) *SiteProfile {
	for i := range p.list {
		if p.list[i].ID == id {
			profile := p.list[i].clone()
			return &profile
		}
	}
	profile := p.unknown.clone()
	return &profile
}

// IDs returns the profile IDs in declaration order.
func (p *Profiles) IDs() []SiteID {
	ids := make([]SiteID, 0, len(p.list))
	for _, profile := range p.list {
		ids = append(ids, profile.ID)
	}
	return ids
}

// Merge returns a new table where overrides replace profiles with the same
// ID and new IDs are appended. The receiver is left untouched.
func (p *Profiles) Merge(overrides ...SiteProfile) *Profiles {
	merged := make([]SiteProfile, len(p.list))
	copy(merged, p.list)

	for _, o := range overrides {
		replaced := false
		for i := range merged {
			if merged[i].ID == o.ID {
				merged[i] = o
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, o)
		}
	}

	return NewProfiles(merged...)
}

func (p SiteProfile) clone() SiteProfile {
	p.TitleSelectors = append([]string(nil), p.TitleSelectors...)
	p.ContainerSelectors = append([]string(nil), p.ContainerSelectors...)
	p.Phrases = append([]string(nil), p.Phrases...)
	return p
}

var defaultProfiles = NewProfiles(
	SiteProfile{
		ID:                 SiteWishket,
		Pattern:            "yozm.wishket.com",
		TitleSelectors:     []string{"h1.article-title"},
		ContainerSelectors: []string{"div.article-body-container", "div.content-body"},
		Phrases: []string{
			"가 PICK 한 뉴스레터를 매주 목요일 에 만나보세요.",
			"개인정보 수집·이용 에 동의해 주세요. 무료로",
			"요즘IT",
			"이메일 주소를 입력해주세요.",
			"현재 글",
			"관련 글 보기",
		},
		ReadySelector: "article",
	},
	SiteProfile{
		ID:                 SiteBrunch,
		Pattern:            "brunch.co.kr",
		TitleSelectors:     []string{"h1.cover_title", "h1.article_title"},
		ContainerSelectors: []string{"div.wrap_body_frame", "div.article_body", "div.wrap_item"},
		Phrases: []string{
			"이 글이 좋으셨다면 추천을 눌러주세요",
			"선택한 텍스트를 드래그하여 하이라이트 해보세요",
			"브런치에서 보기",
			"작가의 글을 공유하세요",
			"작가의 글에 공감하시면 ♡를 누르세요",
			"작가정보",
			"You can make anything by writing",
			"C.S.Lewis",
			"브런치스토리 홈",
			"브런치스토리 나우",
			"브런치스토리 책방",
			"계정을 잊어버리셨나요?",
			"로그인 회원가입",
		},
		ReadySelector: "div.wrap_body_frame, div.article_body",
		Captions:      true,
	},
	SiteProfile{
		ID:                 SiteMedium,
		Pattern:            "medium.com",
		TitleSelectors:     []string{"h1[data-testid='article-title']", "h1.pw-post-title"},
		ContainerSelectors: []string{"article", "div[data-testid='postContent']"},
		Phrases: []string{
			"Medium is an open platform where",
			"Read more from",
			"More from",
			"Recommended from Medium",
			"Get the Medium app",
			"A button that says 'Download on the App Store'",
		},
		ReadySelector: "article, div[data-testid='postContent']",
	},
	SiteProfile{
		ID:                 SiteVelog,
		Pattern:            "velog.io",
		TitleSelectors:     []string{"h1.head-title"},
		ContainerSelectors: []string{"div.atom-one", "div.sc-gZMcBi"},
		Phrases: []string{
			"작성하기",
			"을 작성하려면",
			"로그인",
			"태그",
			"시리즈에 추가",
			"이 블로그",
		},
		ReadySelector: "div.atom-one, h1.head-title",
	},
)

// DefaultProfiles returns the built-in profile table.
func DefaultProfiles() *Profiles {
	return defaultProfiles
}

// Classify maps a URL to a site using the built-in profile table.
func Classify(url string) SiteID {
	return defaultProfiles.Classify(url)
}
