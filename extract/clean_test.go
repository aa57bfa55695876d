package extract_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/artext"
	"github.com/fwojciec/artext/extract"
	"github.com/stretchr/testify/assert"
)

func TestCleaner_Clean(t *testing.T) {
	t.Parallel()

	c := extract.NewCleaner(nil)

	t.Run("truncates at the copyright notice", func(t *testing.T) {
		t.Parallel()

		got := c.Clean("Article body ©️ 2024 Corp", artext.SiteUnknown)

		assert.Equal(t, "Article body", got)
		assert.NotContains(t, got, "2024 Corp")
	})

	t.Run("truncates at the first marker in priority order", func(t *testing.T) {
		t.Parallel()

		got := c.Clean("Body text 저작권 notice ⓒ Corp", artext.SiteUnknown)

		assert.Equal(t, "Body text 저작권 notice", got)
	})

	t.Run("removes common phrases", func(t *testing.T) {
		t.Parallel()

		got := c.Clean("좋은 글입니다. 공유하기 다음 문단", artext.SiteUnknown)

		assert.Equal(t, "좋은 글입니다.\n\n다음 문단", got)
	})

	t.Run("removes site phrases only for that site", func(t *testing.T) {
		t.Parallel()

		text := "요즘IT 본문 시작. 관련 글 보기"

		assert.Equal(t, "본문 시작.", c.Clean(text, artext.SiteWishket))
		assert.Equal(t, "요즘IT 본문 시작.\n\n관련 글 보기", c.Clean(text, artext.SiteUnknown))
	})

	t.Run("removes every occurrence of a phrase", func(t *testing.T) {
		t.Parallel()

		got := c.Clean("Intro Read more from Alice and Read more from Bob", artext.SiteMedium)

		assert.NotContains(t, got, "Read more from")
	})

	t.Run("collapses whitespace and splits sentences", func(t *testing.T) {
		t.Parallel()

		got := c.Clean("  One line.\n\n\tTwo   line.  ", artext.SiteUnknown)

		assert.Equal(t, "One line.\n\nTwo line.", got)
	})

	t.Run("splits after abbreviations too", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Mr.\n\nSmith arrived.", c.Clean("Mr. Smith arrived.", artext.SiteUnknown))
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		inputs := []struct {
			text string
			site artext.SiteID
		}{
			{"First. Second.\n\nThird", artext.SiteUnknown},
			{"브런치 본문입니다. 작가정보 끝", artext.SiteBrunch},
			{"Story text. More from Medium © 2024", artext.SiteMedium},
			{"", artext.SiteVelog},
		}

		for _, in := range inputs {
			once := c.Clean(in.text, in.site)
			assert.Equal(t, once, c.Clean(once, in.site), in.text)
		}
	})

	t.Run("uses custom profile phrases", func(t *testing.T) {
		t.Parallel()

		profiles := artext.NewProfiles(artext.SiteProfile{ID: "blog", Phrases: []string{"Subscribe now"}})
		custom := extract.NewCleaner(profiles)

		assert.Equal(t, "Body", custom.Clean("Body Subscribe now", "blog"))
	})

	t.Run("removes site boilerplate that embeds a common phrase", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			site artext.SiteID
			text string
			want string
		}{
			{artext.SiteVelog, "본문입니다 이 블로그 구독하기", "본문입니다"},
			{artext.SiteVelog, "본문입니다 댓글 작성하기", "본문입니다"},
			{artext.SiteVelog, "본문입니다 댓글을 작성하려면 로그인", "본문입니다"},
			{artext.SiteWishket, "본문입니다 개인정보 수집·이용 에 동의해 주세요. 무료로 구독하기", "본문입니다"},
			{artext.SiteWishket, "본문입니다 요즘IT가 PICK 한 뉴스레터를 매주 목요일 에 만나보세요.", "본문입니다"},
		}

		for _, tt := range tests {
			assert.Equal(t, tt.want, c.Clean(tt.text, tt.site), tt.text)
		}
	})
}

func TestCleaner_PhrasesAreDisjoint(t *testing.T) {
	t.Parallel()

	profiles := artext.DefaultProfiles()
	for _, id := range profiles.IDs() {
		phrases := append(append([]string(nil), extract.CommonPhrases...), profiles.Lookup(id).Phrases...)
		for i, a := range phrases {
			for j, b := range phrases {
				if i == j {
					continue
				}
				assert.False(t, strings.Contains(a, b), "%s: %q contains %q", id, a, b)
			}
		}
	}
}
