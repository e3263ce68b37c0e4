package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// defaultFixtures returns a successful response for every endpoint, shaped
// like the ones the live service documents. rootURL is the server root used
// to build the single-use upload URL.
func defaultFixtures(rootURL string) map[string]Response {
	ok := func(result any) Response {
		return Response{Status: http.StatusOK, Msg: "OK", Result: result}
	}

	return map[string]Response{
		"account/info": ok(gin.H{
			"extid":        "extuserid",
			"email":        "jeff@openload.io",
			"signup_at":    "2015-01-09 23:59:54",
			"storage_left": -1,
			"storage_used": "32922117680",
			"traffic": gin.H{
				"left":     -1,
				"used_24h": 0,
			},
			"balance": 0,
		}),
		"file/dlticket": ok(gin.H{
			"ticket":      "72fA-_Lq8Ak3~1440353112~n~4~0~0~0~0~0~0~0",
			"captcha_url": "https://openload.co/dlcaptcha/b92eY_nfjV4.png",
			"captcha_w":   140,
			"captcha_h":   70,
			"wait_time":   10,
			"valid_until": "2015-08-23 19:55:19",
		}),
		"file/dl": ok(gin.H{
			"name":         "The quick brown fox.txt",
			"size":         12345,
			"sha1":         "2fd4e1c67a2d28fced849ee1bb76e7391b93eb12",
			"content_type": "plain/text",
			"upload_at":    "2011-01-26 13:33:37",
			"url":          "https://abvzps.example.com/dl/l/4spxX_-cSO4/The+quick+brown+fox.txt",
			"token":        "4spxX_-cSO4",
		}),
		"file/info": ok(gin.H{
			"72fA-_Lq8Ak3": gin.H{
				"id":           "72fA-_Lq8Ak3",
				"status":       200,
				"name":         "The quick brown fox.txt",
				"size":         123456789012,
				"sha1":         "2fd4e1c67a2d28fced849ee1bb76e7391b93eb12",
				"content_type": "plain/text",
			},
		}),
		"file/ul": ok(gin.H{
			"url":         rootURL + "/upload/0KFR3GQHFQqEQ",
			"valid_until": "2015-01-09 00:02:50",
		}),
		"remotedl/add": ok(gin.H{
			"id":       "12",
			"folderid": "4248",
		}),
		"remotedl/status": ok(gin.H{
			"24": gin.H{
				"id":           24,
				"remoteurl":    "http://proof.ovh.net/files/100Mio.dat",
				"status":       "new",
				"bytes_loaded": nil,
				"bytes_total":  nil,
				"folderid":     "4248",
				"added":        "2015-02-21 09:20:26",
				"last_update":  "2015-02-21 09:20:26",
				"extid":        false,
				"url":          false,
			},
			"22": gin.H{
				"id":           22,
				"remoteurl":    "http://proof.ovh.net/files/1Mio.dat",
				"status":       "downloaded",
				"bytes_loaded": "1048576",
				"bytes_total":  "1048576",
				"folderid":     "4248",
				"added":        "2015-02-21 09:20:26",
				"last_update":  "2015-02-21 09:20:26",
				"extid":        "3Jxeu_PrGnQ",
				"url":          "https://openload.co/f/3Jxeu_PrGnQ",
			},
		}),
		"file/listfolder": ok(gin.H{
			"folders": []gin.H{
				{"id": "5144", "name": ".videothumb"},
				{"id": "5792", "name": ".subtitles"},
			},
			"files": []gin.H{
				{
					"name":           "big_buck_bunny.mp4.mp4",
					"sha1":           "c6531f5ce9669d6547023d92aea4805b7c45d133",
					"folderid":       "4258",
					"upload_at":      "1419791256",
					"status":         "active",
					"size":           "5114011",
					"content_type":   "video/mp4",
					"download_count": "48",
					"cstatus":        "ok",
					"link":           "https://openload.co/f/UPPjeAk--30/big_buck_bunny.mp4.mp4",
					"linkextid":      "UPPjeAk--30",
				},
			},
		}),
		"file/convert": ok(true),
		"file/runningconverts": ok([]gin.H{
			{
				"name":        "Geysir.AVI",
				"id":          "3565411",
				"status":      "pending",
				"last_update": "2015-08-23 19:41:40",
				"progress":    0.32,
				"retries":     "0",
				"link":        "https://openload.co/f/f02JFG293J8/Geysir.AVI",
				"linkextid":   "f02JFG293J8",
			},
		}),
		"file/getsplash": ok("https://openload.co/splash/4spxX_-cSO4/7sMCCFrBUzU.jpg"),
	}
}
