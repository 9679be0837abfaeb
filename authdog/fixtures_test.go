package authdog

const fullUserInfoJSON = `{
	"meta": {
		"code": 200,
		"message": "Success"
	},
	"session": {
		"remainingSeconds": 3600
	},
	"user": {
		"id": "user123",
		"externalId": "ext123",
		"userName": "testuser",
		"displayName": "Test User",
		"nickName": "test",
		"profileUrl": "https://example.com/profile",
		"title": "Developer",
		"userType": "employee",
		"preferredLanguage": "en",
		"locale": "en-US",
		"timezone": "UTC",
		"active": true,
		"names": {
			"id": "name123",
			"formatted": "Test User",
			"familyName": "User",
			"givenName": "Test",
			"middleName": "Middle",
			"honorificPrefix": "Mr.",
			"honorificSuffix": "Jr."
		},
		"photos": [
			{
				"id": "photo123",
				"value": "https://example.com/photo.jpg",
				"type": "profile"
			}
		],
		"phoneNumbers": [],
		"addresses": [],
		"emails": [
			{
				"id": "email123",
				"value": "test@example.com",
				"type": "work"
			}
		],
		"verifications": [
			{
				"id": "verification123",
				"email": "test@example.com",
				"verified": true,
				"createdAt": "2023-01-01T00:00:00Z",
				"updatedAt": "2023-01-01T00:00:00Z"
			}
		],
		"provider": "test",
		"createdAt": "2023-01-01T00:00:00Z",
		"updatedAt": "2023-01-01T00:00:00Z",
		"environmentId": "env123"
	}
}`

const minimalUserInfoJSON = `{
	"meta": {"code": 200, "message": "Success"},
	"session": {"remainingSeconds": 3600},
	"user": {
		"id": "user123",
		"externalId": "ext123",
		"userName": "testuser",
		"displayName": "Test User",
		"locale": "en-US",
		"active": true,
		"names": {
			"id": "name123",
			"familyName": "User",
			"givenName": "Test"
		},
		"photos": [],
		"phoneNumbers": [],
		"addresses": [],
		"emails": [],
		"verifications": [],
		"provider": "test",
		"createdAt": "2023-01-01T00:00:00Z",
		"updatedAt": "2023-01-01T00:00:00Z",
		"environmentId": "env123"
	}
}`
