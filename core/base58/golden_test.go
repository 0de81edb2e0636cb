package base58_test

// loremIpsum is the classic placeholder paragraph, 446 bytes.
const loremIpsum = "Lorem ipsum dolor sit amet, consectetur adipisicing elit, sed do eiusmod" +
	" tempor incididunt ut labore et dolore magna aliqua. Ut enim ad minim ve" +
	"niam, quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea co" +
	"mmodo consequat. Duis aute irure dolor in reprehenderit in voluptate vel" +
	"it esse cillum dolore eu fugiat nulla pariatur. Excepteur sint occaecat " +
	"cupidatat non proident, sunt in culpa qui officia deserunt mollit anim i" +
	"d est laborum."

// loremIpsumEncoded is the expected encoding of loremIpsum.
const loremIpsumEncoded = "RKDitRLwUhnQCAmM9hhenQXRAiKrL3ByvJ4CYouvhmw6yV8fapqyM95bN6KQVJbKvEN3uHeM" +
	"dP9G7b5HNxmwRGqGibzcjrKaRLL2Nn1GFZRRv2Q8AvQU7MtRagLLzcZcwBDzkMqEpbRy9CvG" +
	"r3BE7t2rH4wXmdExSGNKqV5XxAG7QT2S4ZQ4nzom8QFmoUgkfj8ykPye3z8FU9gJzSf2cDRA" +
	"1ecYwFJtNdycgKTYCQ92pcfq95DoWfTBhnJfkKZXe1Dv3guVKk5otHz4XtWFJjcSC2GLrkRh" +
	"TAEtgkySmaePs5YyoQHKb8PU5paS3dxAWc7sV5rqwrJbSbj7ybK6FQDN2mgbBxy7Wc7CnX6Q" +
	"3Jm4B8cmo4oGixuHKdufABEs4FM3PAhF5CTk9xFsyw3CVJGxE2sMyC5EKnAv5Zc4kGfzzTxQ" +
	"e7VZrm188XqGZKZVRhjSW9CeceAf9bvqefLahgGiKps13595WSErpo1HpHb6Qt22QLSMJFGB" +
	"2Aq7asXXUj55wPxCfVCz8NiqewcNpxF9bvjW9xsaMGqgD4dpgrBFzUw6irds1X481DHnRDi9" +
	"8yAhQJVUoxP8WSm3qJ93qhq8Hx7Eg4aiy"
