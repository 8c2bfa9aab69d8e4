package catalog

import "github.com/carpenike/bibleheadings/internal/models"

// newTestamentDetailed maps curated New Testament books to their builders.
var newTestamentDetailed = map[string]func() models.Book{
	"Matthew":    matthew,
	"John":       john,
	"Romans":     romans,
	"Revelation": revelation,
}

// ── Old Testament ──────────────────────────────────────────────────────────

func genesis() models.Book {
	return models.Book{
		Name:      "Genesis",
		Testament: models.TestamentOld,
		Chapters: []models.Chapter{
			chapter(1, "The Creation of the World"),
			chapter(2, "The Seventh Day, God Rests", "The Creation of Man and Woman"),
			chapter(3, "The Fall"),
			chapter(4, "Cain and Abel"),
		},
	}
}

func exodus() models.Book {
	return models.Book{
		Name:      "Exodus",
		Testament: models.TestamentOld,
		Chapters: []models.Chapter{
			chapter(1, "Israel Increases Greatly in Egypt"),
			chapter(2, "The Birth of Moses", "Moses Flees to Midian"),
			chapter(3, "The Burning Bush"),
			chapter(14, "Crossing the Red Sea"),
			chapter(20, "The Ten Commandments"),
		},
	}
}

func psalms() models.Book {
	return models.Book{
		Name:      "Psalms",
		Testament: models.TestamentOld,
		Chapters: []models.Chapter{
			chapter(1, "The Way of the Righteous and the Wicked"),
			chapter(23, "The Lord Is My Shepherd"),
			chapter(91, "My Refuge and My Fortress"),
			chapter(139, "You Have Searched Me and Known Me"),
		},
	}
}

// ── New Testament ──────────────────────────────────────────────────────────

func matthew() models.Book {
	return models.Book{
		Name:      "Matthew",
		Testament: models.TestamentNew,
		Chapters: []models.Chapter{
			chapter(1,
				"Superscription: The Messianic Thesis Statement (1:1)",
				"Abraham to David: Covenant Line through the Patriarchs (1:2–6a)",
				"David to the Exile: Royal Decline and Judgment (1:6b–11)",
				"Exile to Messiah: Restoration and Fulfillment (1:12–16)",
				"Theological Structuring of Israel's History (1:17)",
				"Conception by the Holy Spirit (1:18)",
				"Joseph's Righteousness and Intended Mercy (1:19)",
				"Angelic Revelation: Divine Initiative Explained (1:20–21)",
				"Prophetic Fulfillment Citation (1:22–23)",
				"Obedient Response of Joseph (1:24–25a)",
				"Naming the Child (1:25b)",
			),
			chapter(2,
				"The Birth in Bethlehem and the Arrival of the Magi (2:1–2)",
				"Herod's Alarm and Prophetic Clarification (2:3–6)",
				"Herod's Deceptive Inquiry (2:7–8)",
				"The Star's Guidance and Joyful Confirmation (2:9–10)",
				"Homage and Royal Gifts (2:11)",
				"Divine Warning and Providential Protection (2:12)",
				"Escape to Egypt and Fulfillment of Scripture (2:13–15)",
				"The Massacre of the Infants (2:16–18)",
				"Death of Herod and Return from Egypt (2:19–21)",
				"Fear of Archelaus (2:22)",
				"Settlement in Nazareth and Prophetic Fulfillment (2:23)",
			),
			chapter(5, "The Sermon on the Mount", "The Beatitudes"),
			chapter(6, "Giving to the Needy", "The Lord's Prayer"),
			chapter(28, "The Resurrection", "The Great Commission"),
		},
	}
}

func john() models.Book {
	return models.Book{
		Name:      "John",
		Testament: models.TestamentNew,
		Chapters: []models.Chapter{
			chapter(1, "The Word Became Flesh", "The Testimony of John the Baptist"),
			chapter(3, "You Must Be Born Again", "For God So Loved the World"),
			chapter(11, "The Death of Lazarus", "I Am the Resurrection and the Life"),
			chapter(14, "I Am the Way, the Truth, and the Life"),
		},
	}
}

func romans() models.Book {
	return models.Book{
		Name:      "Romans",
		Testament: models.TestamentNew,
		Chapters: []models.Chapter{
			chapter(1, "Greeting", "The Righteous Shall Live by Faith"),
			chapter(3, "No One Is Righteous", "Righteousness Through Faith in Christ"),
			chapter(5, "Peace with God Through Faith"),
			chapter(8, "Life in the Spirit", "More Than Conquerors"),
			chapter(12, "A Living Sacrifice", "Gifts of Grace"),
		},
	}
}

func revelation() models.Book {
	return models.Book{
		Name:      "Revelation",
		Testament: models.TestamentNew,
		Chapters: []models.Chapter{
			chapter(1, "Prologue", "Vision of the Son of Man"),
			chapter(21, "The New Heaven and the New Earth"),
			chapter(22, "The River of Life", "Jesus Is Coming"),
		},
	}
}
