// ABOUTME: Built-in language set used when no language file is configured
// ABOUTME: Covers English, Telugu and Hindi with the frontend's translation keys

package lang

const defaultLanguageYAML = `
default: en
languages:
  en:
    name: English
    direction: ltr
  te:
    name: తెలుగు
    direction: ltr
  hi:
    name: हिन्दी
    direction: ltr
translations:
  en:
    nav:
      home: Home
      politics: Politics
      movies: Movies
      sports: Sports
      business: Business
      tech: Tech
      videos: Videos
      submit: Submit News
    labels:
      latest: Latest News
      source: Source
      published: Published
      read_more: Read more
      no_results: No articles found
    submit:
      title: Title
      summary: Summary
      content: Content
      category: Category
      author: Author
      success: News submitted successfully
  te:
    nav:
      home: హోమ్
      politics: రాజకీయాలు
      movies: సినిమాలు
      sports: క్రీడలు
      business: వ్యాపారం
      tech: టెక్నాలజీ
      videos: వీడియోలు
      submit: వార్త పంపండి
    labels:
      latest: తాజా వార్తలు
      source: మూలం
      published: ప్రచురించబడింది
      read_more: మరింత చదవండి
      no_results: వార్తలు లభించలేదు
    submit:
      title: శీర్షిక
      summary: సారాంశం
      content: విషయం
      category: వర్గం
      author: రచయిత
      success: వార్త విజయవంతంగా సమర్పించబడింది
  hi:
    nav:
      home: होम
      politics: राजनीति
      movies: फ़िल्में
      sports: खेल
      business: व्यापार
      tech: तकनीक
      videos: वीडियो
      submit: समाचार भेजें
    labels:
      latest: ताज़ा खबरें
      source: स्रोत
      published: प्रकाशित
      read_more: और पढ़ें
      no_results: कोई समाचार नहीं मिला
    submit:
      title: शीर्षक
      summary: सारांश
      content: विषय
      category: श्रेणी
      author: लेखक
      success: समाचार सफलतापूर्वक भेजा गया
`
