package forms

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/d60-Lab/gin-blog/internal/service"
)

// 与 datetime-local 输入框一致
const pubDateLayout = "2006-01-02T15:04"

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// RegisterValidators 在 gin 的 validator 引擎上挂自定义规则，启动时调用一次
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine")
	}
	if err := v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}
	// 纯空白和空串一样当缺失处理
	return v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// PostForm 文章创建/编辑表单
type PostForm struct {
	Title       string `form:"title" binding:"required,max=256"`
	Text        string `form:"text" binding:"required"`
	PubDate     string `form:"pub_date" binding:"required"`
	IsPublished bool   `form:"is_published"`
	CategoryID  string `form:"category"`
	LocationID  string `form:"location"`
}

// ToInput 解析日期并转成服务层输入；日期非法返回字段错误
func (f *PostForm) ToInput() (service.PostInput, map[string]string) {
	pubDate, err := time.ParseInLocation(pubDateLayout, f.PubDate, time.Local)
	if err != nil {
		return service.PostInput{}, map[string]string{"pub_date": "invalid date/time"}
	}
	in := service.PostInput{
		Title:       f.Title,
		Text:        f.Text,
		PubDate:     pubDate,
		IsPublished: f.IsPublished,
	}
	if f.CategoryID != "" {
		in.CategoryID = &f.CategoryID
	}
	if f.LocationID != "" {
		in.LocationID = &f.LocationID
	}
	return in, nil
}

// FromPost 用现有文章预填表单（编辑页 GET）
func FromPost(title, text string, pubDate time.Time, isPublished bool, categoryID, locationID *string) PostForm {
	f := PostForm{
		Title:       title,
		Text:        text,
		PubDate:     pubDate.Local().Format(pubDateLayout),
		IsPublished: isPublished,
	}
	if categoryID != nil {
		f.CategoryID = *categoryID
	}
	if locationID != nil {
		f.LocationID = *locationID
	}
	return f
}

// CommentForm 评论表单
type CommentForm struct {
	Text string `form:"text" binding:"required,notblank"`
}

// ProfileForm 个人资料表单
type ProfileForm struct {
	Username  string `form:"username" binding:"required,max=150,username"`
	FirstName string `form:"first_name" binding:"max=150"`
	LastName  string `form:"last_name" binding:"max=150"`
	Email     string `form:"email" binding:"omitempty,email"`
}

// RegisterForm 注册表单
type RegisterForm struct {
	Username        string `form:"username" binding:"required,max=150,username"`
	Email           string `form:"email" binding:"omitempty,email"`
	Password        string `form:"password" binding:"required,min=8"`
	PasswordConfirm string `form:"password_confirm" binding:"required,eqfield=Password"`
}

// LoginForm 登录表单
type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// Errors 把 binding 校验错误压成 field -> message，供模板渲染
func Errors(err error) map[string]string {
	out := map[string]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			out[fieldName(fe)] = message(fe)
		}
		return out
	}
	out["__all__"] = "invalid form submission"
	return out
}

func fieldName(fe validator.FieldError) string {
	switch fe.Field() {
	case "Title":
		return "title"
	case "Text":
		return "text"
	case "PubDate":
		return "pub_date"
	case "Username":
		return "username"
	case "FirstName":
		return "first_name"
	case "LastName":
		return "last_name"
	case "Email":
		return "email"
	case "Password":
		return "password"
	case "PasswordConfirm":
		return "password_confirm"
	default:
		return fe.Field()
	}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "this field is required"
	case "max":
		return "value is too long"
	case "min":
		return "value is too short"
	case "email":
		return "enter a valid email address"
	case "eqfield":
		return "passwords do not match"
	case "username":
		return "letters, digits and ./-/_ only"
	default:
		return "invalid value"
	}
}
