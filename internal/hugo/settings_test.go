package hugo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"git.home.luguber.info/inful/siteconf/internal/config"
)

func TestSettings_Declared(t *testing.T) {
	s := NewConfigWriter(declaredConfig()).Settings()

	assert.Equal(t, "Python Group", s["AUTHOR"])
	assert.Equal(t, "Python Group UEA", s["SITENAME"])
	assert.Equal(t, "", s["SITEURL"])
	assert.Equal(t, 5, s["DEFAULT_PAGINATION"])
	assert.Equal(t, "<script>hdr</script>", s["EXTRA_HEADER"])
	assert.Equal(t, map[string]string{"path": "robots.txt"},
		s["EXTRA_PATH_METADATA"].(map[string]map[string]string)["extra/robots.txt"])

	for _, name := range []string{"FEED_ALL_ATOM", "CATEGORY_FEED_ATOM", "TRANSLATION_FEED_ATOM", "AUTHOR_FEED_ATOM", "AUTHOR_FEED_RSS"} {
		v, ok := s[name]
		assert.True(t, ok, name)
		assert.Nil(t, v, name)
	}

	links := s["LINKS"].([][]string)
	assert.Len(t, links, 10)
	assert.Equal(t, []string{"EarthPy", "http://earthpy.org/"}, links[4])
}

func TestSettings_EnabledFeedsKeepDefaults(t *testing.T) {
	cfg := declaredConfig()
	cfg.DisabledFeeds = []config.FeedKind{config.FeedAuthor}
	s := NewConfigWriter(cfg).Settings()

	assert.Equal(t, "feeds/all.atom.xml", s["FEED_ALL_ATOM"])
	assert.Equal(t, "feeds/{slug}.atom.xml", s["CATEGORY_FEED_ATOM"])
	assert.Nil(t, s["AUTHOR_FEED_ATOM"])
	assert.Nil(t, s["AUTHOR_FEED_RSS"])
}
