package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"mailroom.app/triage/internal/domain"
	"mailroom.app/triage/internal/http/handler"
)

var _ = Describe("TriageHandler", func() {
	var (
		router *gin.Engine
		clf    *mockClassifier
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		clf = &mockClassifier{}
		h := handler.NewTriageHandler(clf)
		router.POST("/process_text", h.ProcessText)
		router.POST("/upload_file", h.UploadFile)
	})

	Describe("ProcessText", func() {
		It("returns the category and suggested reply", func() {
			clf.classifyFn = func(_ context.Context, _ string) domain.ClassificationResult {
				return domain.ClassificationResult{
					Category: domain.CategoryProductive,
					Response: "Olá! Recebemos sua solicitação.",
				}
			}

			body, _ := json.Marshal(map[string]string{"text": "Preciso de suporte urgente"})
			req := httptest.NewRequest(http.MethodPost, "/process_text", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]string
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["categoria"]).To(Equal("Produtivo"))
			Expect(resp["resposta"]).To(Equal("Olá! Recebemos sua solicitação."))
			Expect(clf.lastInput).To(Equal("Preciso de suporte urgente"))
		})

		It("returns 400 on malformed JSON", func() {
			req := httptest.NewRequest(http.MethodPost, "/process_text", bytes.NewBufferString(`{`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 400 when text is missing", func() {
			req := httptest.NewRequest(http.MethodPost, "/process_text", bytes.NewBufferString(`{}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("UploadFile", func() {
		upload := func(filename string, content []byte) *httptest.ResponseRecorder {
			var buf bytes.Buffer
			mw := multipart.NewWriter(&buf)
			part, err := mw.CreateFormFile("file", filename)
			Expect(err).NotTo(HaveOccurred())
			_, err = part.Write(content)
			Expect(err).NotTo(HaveOccurred())
			Expect(mw.Close()).To(Succeed())

			req := httptest.NewRequest(http.MethodPost, "/upload_file", &buf)
			req.Header.Set("Content-Type", mw.FormDataContentType())
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			return w
		}

		It("classifies the extracted text of a .txt upload", func() {
			clf.classifyFn = func(_ context.Context, _ string) domain.ClassificationResult {
				return domain.ClassificationResult{
					Category: domain.CategoryUnproductive,
					Response: "Obrigado pela sua mensagem!",
				}
			}

			w := upload("email.txt", []byte("Feliz natal a todos!"))

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]string
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["categoria"]).To(Equal("Improdutivo"))
			Expect(clf.lastInput).To(Equal("Feliz natal a todos!"))
		})

		It("returns 400 for an unsupported extension", func() {
			w := upload("email.docx", []byte("conteudo"))

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 400 when no file is sent", func() {
			req := httptest.NewRequest(http.MethodPost, "/upload_file", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
